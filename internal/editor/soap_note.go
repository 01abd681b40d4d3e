package editor

import (
	"strings"

	"github.com/glowdesk/medspa-console/internal/dates"
	"github.com/glowdesk/medspa-console/internal/dto"
	"github.com/glowdesk/medspa-console/internal/models"
)

// SOAPNoteSpec edits SOAP notes. JSON body, no attachments. All four
// narrative sections are mandatory; the client selection is mandatory when
// creating.
func SOAPNoteSpec() Spec[models.SOAPNote] {
	return Spec[models.SOAPNote]{
		Path: "/soap-notes",

		Defaults: func() map[string]string {
			return map[string]string{
				"client_id":      "",
				"appointment_id": "",
				"provider_id":    "",
				"note_date":      dates.Today(),
				"subjective":     "",
				"objective":      "",
				"assessment":     "",
				"plan":           "",
			}
		},

		FromRecord: func(n models.SOAPNote) map[string]string {
			return map[string]string{
				"client_id":      n.ClientID,
				"appointment_id": n.AppointmentID,
				"provider_id":    n.ProviderID,
				"note_date":      n.NoteDate,
				"subjective":     n.Subjective,
				"objective":      n.Objective,
				"assessment":     n.Assessment,
				"plan":           n.Plan,
			}
		},

		RecordID: func(n models.SOAPNote) string { return n.ID },

		Validate: validateSOAPNote,

		Payload: func(fields map[string]string) any {
			return dto.SOAPNotePayload{
				ClientID:      fields["client_id"],
				AppointmentID: fields["appointment_id"],
				ProviderID:    fields["provider_id"],
				NoteDate:      fields["note_date"],
				Subjective:    fields["subjective"],
				Objective:     fields["objective"],
				Assessment:    fields["assessment"],
				Plan:          fields["plan"],
			}
		},
	}
}

var soapNarrativeFields = []string{"subjective", "objective", "assessment", "plan"}

func validateSOAPNote(fields map[string]string, creating bool) map[string]string {
	errs := map[string]string{}

	for _, f := range soapNarrativeFields {
		if strings.TrimSpace(fields[f]) == "" {
			errs[f] = f + " section is required"
		}
	}
	if creating && strings.TrimSpace(fields["client_id"]) == "" {
		errs["client_id"] = "select a client"
	}
	if date := strings.TrimSpace(fields["note_date"]); date != "" {
		if _, err := dates.ParseDay(date); err != nil {
			errs["note_date"] = "date must be YYYY-MM-DD"
		}
	}

	return errs
}
