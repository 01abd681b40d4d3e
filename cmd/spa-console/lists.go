package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/glowdesk/medspa-console/internal/listctl"
	"github.com/glowdesk/medspa-console/internal/models"
)

func (a *app) cmdAppointments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("appointments", flag.ExitOnError)
	mine := fs.Bool("mine", false, "only my own bookings")
	q := fs.String("q", "", "search term")
	status := fs.String("status", listctl.FilterAll, "status filter")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	res := listctl.Appointments()
	if *mine {
		res = listctl.Bookings()
	}
	ctl := listctl.New(a.client, res, a.log)
	if err := ctl.Load(ctx); err != nil {
		return err
	}

	rows := ctl.FilteredView(*q, *status, listctl.FilterAll)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tNOTES")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.Status, r.Notes)
	}
	w.Flush()

	counts := listctl.StatusCounts(ctl.Items(),
		func(a models.Appointment) string { return a.Status },
		models.AppointmentStatuses,
	)
	fmt.Println()
	for _, s := range models.AppointmentStatuses {
		fmt.Printf("%s: %d  ", s, counts[s])
	}
	fmt.Println()
	return nil
}

func (a *app) cmdTreatments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("treatments", flag.ExitOnError)
	q := fs.String("q", "", "search term")
	status := fs.String("status", listctl.FilterAll, "status filter")
	provider := fs.String("provider", listctl.FilterAll, "provider name filter")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	ctl := listctl.New(a.client, listctl.Treatments(), a.log)
	if err := ctl.Load(ctx); err != nil {
		return err
	}

	rows := ctl.FilteredView(*q, *status, *provider)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tTYPE\tDATE\tCOST\tSTATUS\tPROVIDER")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ClientRef, r.TreatmentType, r.TreatmentDate, r.Cost, r.Status, r.ProviderName)
	}
	w.Flush()

	sum := listctl.SummarizeTreatments(ctl.Items())
	fmt.Printf("\ncompleted: %d  pending: %d  total cost: %.2f\n",
		sum.Completed, sum.Pending, sum.TotalCost)
	return nil
}

func (a *app) cmdSOAPNotes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("soap-notes", flag.ExitOnError)
	q := fs.String("q", "", "search term")
	clientID := fs.String("client", "", "client id filter")
	provider := fs.String("provider", listctl.FilterAll, "provider name filter")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	ctl := listctl.New(a.client, listctl.SOAPNotes(*clientID), a.log)
	if err := ctl.Load(ctx); err != nil {
		return err
	}

	rows := ctl.FilteredView(*q, listctl.FilterAll, *provider)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tDATE\tPROVIDER\tSUBJECTIVE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.ClientName, r.NoteDate, r.ProviderName, clip(r.Subjective, 48))
	}
	w.Flush()
	return nil
}

func (a *app) cmdClients(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ExitOnError)
	q := fs.String("q", "", "search term")
	fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	ctl := listctl.New(a.client, listctl.Clients(), a.log)
	if err := ctl.Load(ctx); err != nil {
		return err
	}

	rows := ctl.FilteredView(*q, listctl.FilterAll, listctl.FilterAll)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, r.Email, r.Phone)
	}
	w.Flush()
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
