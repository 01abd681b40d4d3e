package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/api"
	"github.com/glowdesk/medspa-console/internal/config"
	"github.com/glowdesk/medspa-console/internal/logging"
	"github.com/glowdesk/medspa-console/internal/session"
)

const usage = `spa-console — med-spa management console

Usage: spa-console <command> [flags]

Auth:
  login      -email -password
  signup     -email -password -name
  logout
  whoami

Lists (all take -q, -status, -provider where applicable):
  appointments [-mine]
  treatments
  soap-notes   [-client <id>]
  clients

Records:
  treatment-add    -type -notes [-cost -date -client -desc -before -after]
  treatment-edit   -id [same flags as add]
  treatment-delete -id [-yes]
  soap-add         -client -subjective -objective -assessment -plan [-date -appointment]
  soap-edit        -id [same flags as add]
  soap-delete      -id [-yes]

Server base URL comes from SPA_API_URL (default http://localhost:8080).
`

// app bundles the shared wiring every command needs. The session store is
// constructed here, once, and passed down; there is no package-level session.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	client  *api.Client
	session *session.Store
	stdin   *bufio.Reader
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logger := logging.New(true) // quiet JSON logs; the console prints its own output
	defer logger.Sync()

	client := api.New(cfg.APIBaseURL, logger)
	a := &app{
		cfg:     cfg,
		log:     logger,
		client:  client,
		session: session.New(client, cfg.CredentialsPath, logger),
		stdin:   bufio.NewReader(os.Stdin),
	}

	ctx := context.Background()
	a.session.Initialize(ctx)

	cmd, args := os.Args[1], os.Args[2:]
	if err := a.run(ctx, cmd, args); err != nil {
		if fields, ok := api.IsValidation(err); ok {
			for field, msg := range fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "logout":
		a.session.Logout()
		fmt.Println("Logged out.")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "appointments":
		return a.cmdAppointments(ctx, args)
	case "treatments":
		return a.cmdTreatments(ctx, args)
	case "soap-notes":
		return a.cmdSOAPNotes(ctx, args)
	case "clients":
		return a.cmdClients(ctx, args)
	case "treatment-add":
		return a.cmdTreatmentSave(ctx, args)
	case "treatment-edit":
		return a.cmdTreatmentEdit(ctx, args)
	case "treatment-delete":
		return a.cmdDelete(ctx, args, "/treatments", "treatment")
	case "soap-add":
		return a.cmdSOAPSave(ctx, args)
	case "soap-edit":
		return a.cmdSOAPEdit(ctx, args)
	case "soap-delete":
		return a.cmdDelete(ctx, args, "/soap-notes", "SOAP note")
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", a.session.Current().Name, a.session.Current().Role)
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	fs.Parse(args)

	if err := a.session.Signup(ctx, *email, *password, *name); err != nil {
		return err
	}
	fmt.Printf("Account created. Logged in as %s\n", a.session.Current().Name)
	return nil
}

func (a *app) cmdWhoami() error {
	s := a.session.Current()
	if !s.Authenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s> — %s\n", s.Name, s.Email, s.Role)
	return nil
}

// requireAuth fails early with the same message a 401 would produce, saving
// a round trip when there is no token at all.
func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return &api.AuthError{}
	}
	return nil
}

// confirmPrompt asks the two-step deletion question showing the target's
// identifying fields.
func (a *app) confirmPrompt(kind, id, date, owner string) bool {
	fmt.Printf("Delete %s %s (%s, %s)? [y/N] ", kind, id, date, owner)
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return false
	}
	return line == "y\n" || line == "Y\n" || line == "yes\n"
}
