package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/glowdesk/medspa-console/internal/confirm"
	"github.com/glowdesk/medspa-console/internal/editor"
	"github.com/glowdesk/medspa-console/internal/listctl"
	"github.com/glowdesk/medspa-console/internal/models"
)

// --------- Treatments ---------

type treatmentFlags struct {
	fs          *flag.FlagSet
	id          *string
	clientRef   *string
	kind        *string
	notes       *string
	cost        *string
	date        *string
	description *string
	status      *string
	appointment *string
	before      *string
	after       *string
}

func newTreatmentFlags(name string) *treatmentFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &treatmentFlags{
		fs:          fs,
		id:          fs.String("id", "", "treatment id (edit only)"),
		clientRef:   fs.String("client", "", "client name or reference"),
		kind:        fs.String("type", "", "treatment type"),
		notes:       fs.String("notes", "", "treatment notes"),
		cost:        fs.String("cost", "", "cost"),
		date:        fs.String("date", "", "treatment date (YYYY-MM-DD)"),
		description: fs.String("desc", "", "description"),
		status:      fs.String("status", "", "status (completed|pending|canceled)"),
		appointment: fs.String("appointment", "", "appointment id"),
		before:      fs.String("before", "", "before photo file"),
		after:       fs.String("after", "", "after photo file"),
	}
}

// apply copies only the flags the user actually set onto the draft, so an
// edit leaves untouched fields as they were.
func (tf *treatmentFlags) apply(ed *editor.Editor[models.TreatmentRecord]) {
	set := map[string]string{
		"client":      "client_ref",
		"type":        "treatment_type",
		"notes":       "notes",
		"cost":        "cost",
		"date":        "treatment_date",
		"desc":        "description",
		"status":      "status",
		"appointment": "appointment_id",
	}
	tf.fs.Visit(func(f *flag.Flag) {
		if field, ok := set[f.Name]; ok {
			ed.SetField(field, f.Value.String())
		}
	})
}

func (tf *treatmentFlags) attachPhotos(ed *editor.Editor[models.TreatmentRecord]) error {
	for field, path := range map[string]string{
		"before_photo": *tf.before,
		"after_photo":  *tf.after,
	} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", path, err)
		}
		if err := ed.AttachPhoto(field, path, data); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) cmdTreatmentSave(ctx context.Context, args []string) error {
	tf := newTreatmentFlags("treatment-add")
	tf.fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	ed := editor.New(a.client, editor.TreatmentSpec(), a.log)
	ed.OpenForCreate()
	tf.apply(ed)
	if err := tf.attachPhotos(ed); err != nil {
		return err
	}

	id, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Saved treatment", id)
	return nil
}

func (a *app) cmdTreatmentEdit(ctx context.Context, args []string) error {
	tf := newTreatmentFlags("treatment-edit")
	tf.fs.Parse(args)
	if *tf.id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.requireAuth(); err != nil {
		return err
	}

	record, err := a.findTreatment(ctx, *tf.id)
	if err != nil {
		return err
	}

	ed := editor.New(a.client, editor.TreatmentSpec(), a.log)
	ed.OpenForEdit(record)
	tf.apply(ed)
	if err := tf.attachPhotos(ed); err != nil {
		return err
	}

	id, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Saved treatment", id)
	return nil
}

func (a *app) findTreatment(ctx context.Context, id string) (models.TreatmentRecord, error) {
	ctl := listctl.New(a.client, listctl.Treatments(), a.log)
	if err := ctl.Load(ctx); err != nil {
		return models.TreatmentRecord{}, err
	}
	for _, t := range ctl.Items() {
		if t.ID == id {
			return t, nil
		}
	}
	return models.TreatmentRecord{}, fmt.Errorf("no treatment with id %s", id)
}

// --------- SOAP notes ---------

type soapFlags struct {
	fs          *flag.FlagSet
	id          *string
	client      *string
	appointment *string
	date        *string
	subjective  *string
	objective   *string
	assessment  *string
	plan        *string
}

func newSOAPFlags(name string) *soapFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &soapFlags{
		fs:          fs,
		id:          fs.String("id", "", "note id (edit only)"),
		client:      fs.String("client", "", "client id"),
		appointment: fs.String("appointment", "", "appointment id"),
		date:        fs.String("date", "", "note date (YYYY-MM-DD)"),
		subjective:  fs.String("subjective", "", "subjective section"),
		objective:   fs.String("objective", "", "objective section"),
		assessment:  fs.String("assessment", "", "assessment section"),
		plan:        fs.String("plan", "", "plan section"),
	}
}

func (sf *soapFlags) apply(ed *editor.Editor[models.SOAPNote]) {
	set := map[string]string{
		"client":      "client_id",
		"appointment": "appointment_id",
		"date":        "note_date",
		"subjective":  "subjective",
		"objective":   "objective",
		"assessment":  "assessment",
		"plan":        "plan",
	}
	sf.fs.Visit(func(f *flag.Flag) {
		if field, ok := set[f.Name]; ok {
			ed.SetField(field, f.Value.String())
		}
	})
}

func (a *app) cmdSOAPSave(ctx context.Context, args []string) error {
	sf := newSOAPFlags("soap-add")
	sf.fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	ed := editor.New(a.client, editor.SOAPNoteSpec(), a.log)
	ed.OpenForCreate()
	sf.apply(ed)

	id, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Saved SOAP note", id)
	return nil
}

func (a *app) cmdSOAPEdit(ctx context.Context, args []string) error {
	sf := newSOAPFlags("soap-edit")
	sf.fs.Parse(args)
	if *sf.id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.requireAuth(); err != nil {
		return err
	}

	ctl := listctl.New(a.client, listctl.SOAPNotes(""), a.log)
	if err := ctl.Load(ctx); err != nil {
		return err
	}
	var record models.SOAPNote
	found := false
	for _, n := range ctl.Items() {
		if n.ID == *sf.id {
			record, found = n, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no SOAP note with id %s", *sf.id)
	}

	ed := editor.New(a.client, editor.SOAPNoteSpec(), a.log)
	ed.OpenForEdit(record)
	sf.apply(ed)

	id, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println("Saved SOAP note", id)
	return nil
}

// --------- Deletion ---------

func (a *app) cmdDelete(ctx context.Context, args []string, path, kind string) error {
	fs := flag.NewFlagSet(kind+"-delete", flag.ExitOnError)
	id := fs.String("id", "", "record id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.requireAuth(); err != nil {
		return err
	}

	target, err := a.deletionTarget(ctx, path, kind, *id)
	if err != nil {
		return err
	}

	confirmer := confirm.New(a.client, path, a.log)
	confirmer.OnDeleted(func(id string) {
		fmt.Println("Deleted", kind, id)
	})
	confirmer.Request(target)

	if !*yes && !a.confirmPrompt(target.Kind, target.ID, target.Date, target.Owner) {
		confirmer.Cancel()
		fmt.Println("Cancelled.")
		return nil
	}

	return confirmer.Confirm(ctx)
}

// deletionTarget resolves the record's identifying fields so the prompt can
// show what is about to be deleted.
func (a *app) deletionTarget(ctx context.Context, path, kind, id string) (confirm.Target, error) {
	switch path {
	case "/treatments":
		record, err := a.findTreatment(ctx, id)
		if err != nil {
			return confirm.Target{}, err
		}
		return confirm.Target{Kind: kind, ID: id, Date: record.TreatmentDate, Owner: record.ClientRef}, nil

	case "/soap-notes":
		ctl := listctl.New(a.client, listctl.SOAPNotes(""), a.log)
		if err := ctl.Load(ctx); err != nil {
			return confirm.Target{}, err
		}
		for _, n := range ctl.Items() {
			if n.ID == id {
				return confirm.Target{Kind: kind, ID: id, Date: n.NoteDate, Owner: n.ClientName}, nil
			}
		}
		return confirm.Target{}, fmt.Errorf("no %s with id %s", kind, id)
	}
	return confirm.Target{}, fmt.Errorf("unsupported path %s", path)
}
