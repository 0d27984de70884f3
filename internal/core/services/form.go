package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
)

// FormState is the lifecycle of one prediction form instance.
type FormState string

const (
	FormReady         FormState = "ready"
	FormLoadFailed    FormState = "load_failed"
	FormSubmitting    FormState = "submitting"
	FormSubmitFailed  FormState = "submit_failed"
	FormNavigatedAway FormState = "navigated_away"
)

const (
	alertLoadFailed   = "No se pudieron cargar las opciones del formulario. Intenta nuevamente."
	alertSubmitFailed = "Error al realizar la predicción"
	alertInProgress   = "Ya estamos procesando tu predicción. Espera un momento."
)

var fieldMeta = map[string]struct {
	Label       string
	Placeholder string
}{
	domain.FieldBrand:        {"Marca del Vehículo", "Selecciona la marca"},
	domain.FieldYear:         {"Año de Fabricación", "Selecciona el año"},
	domain.FieldFuel:         {"Tipo de Combustible", "Selecciona el combustible"},
	domain.FieldTransmission: {"Transmisión", "Selecciona la transmisión"},
	domain.FieldLocation:     {"Ubicación", "Selecciona la ubicación"},
	domain.FieldSubcategory:  {"Tipo de Vehículo", "Selecciona el tipo"},
}

// FieldView is one select input of the form.
type FieldView struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
	Value       string   `json:"value"`
	Invalid     bool     `json:"invalid,omitempty"`
}

// FormView is the render-ready state of the prediction form.
type FormView struct {
	State          FormState   `json:"state"`
	Token          string      `json:"token"`
	Fields         []FieldView `json:"fields"`
	Alert          string      `json:"alert,omitempty"`
	SubmitDisabled bool        `json:"submit_disabled"`
	HandoffID      string      `json:"handoff_id,omitempty"`
}

// FormService drives the prediction form: options, validation and submission.
type FormService struct {
	api     ports.PredictorAPI
	carrier ports.ResultCarrier

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewFormService creates a new form service
func NewFormService(api ports.PredictorAPI, carrier ports.ResultCarrier) *FormService {
	return &FormService{
		api:      api,
		carrier:  carrier,
		inflight: make(map[string]struct{}),
	}
}

// Open loads the options for a fresh form instance.
func (s *FormService) Open(ctx context.Context) *FormView {
	return s.render(ctx, uuid.NewString(), domain.FormFields{})
}

// Submit validates the fields, sends them to the backend and hands the result
// to the carrier. It returns the handoff id to redirect to.
//
// Validation happens before any backend call. Only one submission per token may
// be outstanding; the caller's context cancels the backend call, and a result
// that arrives after cancellation is dropped.
func (s *FormService) Submit(ctx context.Context, token string, fields domain.FormFields) (uuid.UUID, error) {
	if strings.TrimSpace(token) == "" {
		return uuid.Nil, domain.ErrInvalidFormToken
	}

	req, err := fields.Validate()
	if err != nil {
		return uuid.Nil, err
	}

	if !s.acquire(token) {
		return uuid.Nil, domain.ErrSubmissionInProgress
	}
	defer s.release(token)

	result, err := s.api.SubmitPrediction(ctx, req)
	if err != nil {
		return uuid.Nil, err
	}
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	id, err := s.carrier.Put(ctx, result)
	if err != nil {
		return uuid.Nil, err
	}

	log.WithFields(log.Fields{
		"brand":   req.Brand,
		"year":    req.Year,
		"handoff": id,
	}).Info("prediction completed")

	return id, nil
}

// Restore rebuilds the form after a failed submission, keeping the user's
// selections and explaining what went wrong. When the options cannot be
// reloaded, each retained selection stays available as its own option so the
// form can be resubmitted.
func (s *FormService) Restore(ctx context.Context, token string, fields domain.FormFields, cause error) *FormView {
	if token == "" {
		token = uuid.NewString()
	}
	view := s.render(ctx, token, fields)
	if view.State == FormLoadFailed {
		view = retained(token, fields)
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(cause, &verr):
		for i := range view.Fields {
			view.Fields[i].Invalid = verr.HasField(view.Fields[i].Name)
		}
		view.Alert = validationAlert(verr)
	case errors.Is(cause, domain.ErrSubmissionInProgress):
		view.State = FormSubmitting
		view.SubmitDisabled = true
		view.Alert = alertInProgress
	default:
		view.State = FormSubmitFailed
		view.Alert = alertSubmitFailed
	}
	return view
}

// Navigated describes a form that handed its result to the results page.
func (s *FormService) Navigated(token string, handoffID uuid.UUID) *FormView {
	return &FormView{
		State:          FormNavigatedAway,
		Token:          token,
		SubmitDisabled: true,
		HandoffID:      handoffID.String(),
	}
}

// InFlight reports whether a submission for token is outstanding.
func (s *FormService) InFlight(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inflight[token]
	return ok
}

func (s *FormService) render(ctx context.Context, token string, fields domain.FormFields) *FormView {
	view := &FormView{Token: token}

	opts, err := s.api.FetchFormOptions(ctx)
	if err != nil {
		log.WithError(err).Error("load form options failed")
		view.State = FormLoadFailed
		view.Alert = alertLoadFailed
		view.SubmitDisabled = true
		return view
	}

	for _, name := range domain.FieldNames {
		meta := fieldMeta[name]
		view.Fields = append(view.Fields, FieldView{
			Name:        name,
			Label:       meta.Label,
			Placeholder: meta.Placeholder,
			Options:     opts.Field(name),
			Value:       fields.Get(name),
		})
	}
	view.State = FormReady
	return view
}

// retained builds a ready form whose options are only the submitted values.
func retained(token string, fields domain.FormFields) *FormView {
	view := &FormView{
		State: FormReady,
		Token: token,
	}
	for _, name := range domain.FieldNames {
		meta := fieldMeta[name]
		value := fields.Get(name)
		var options []string
		if strings.TrimSpace(value) != "" {
			options = []string{value}
		}
		view.Fields = append(view.Fields, FieldView{
			Name:        name,
			Label:       meta.Label,
			Placeholder: meta.Placeholder,
			Options:     options,
			Value:       value,
		})
	}
	return view
}

func (s *FormService) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[token]; busy {
		return false
	}
	s.inflight[token] = struct{}{}
	return true
}

func (s *FormService) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, token)
}

func validationAlert(verr *domain.ValidationError) string {
	var labels []string
	for _, name := range append(append([]string{}, verr.Missing...), verr.Invalid...) {
		labels = append(labels, fieldMeta[name].Label)
	}
	return "Completa correctamente: " + strings.Join(labels, ", ")
}
