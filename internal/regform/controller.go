package regform

import (
	"context"
	"sync"
	"time"

	"github.com/ucrconnect/dashboard-api/internal/logger"
)

// Debounce and dismissal windows used by the controller.
const (
	DebounceInterval    = 500 * time.Millisecond
	SuccessDismissDelay = 3 * time.Second
)

// Availability is the tri-state result of the email existence lookup.
type Availability int

const (
	AvailabilityUnknown Availability = iota // no resolved answer for the current value
	AvailabilityAvailable
	AvailabilityTaken
)

// Phase is the submission state of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// AvailabilityLookup answers whether an email is free to register.
type AvailabilityLookup interface {
	CheckEmail(ctx context.Context, email string) (available bool, err error)
}

// Registrar performs the actual user creation.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) error
}

const (
	msgChecking       = "Verificando disponibilidad..."
	msgEmailAvailable = "Correo disponible"
	msgEmailTaken     = "Este correo ya está registrado"
	msgSubmitSuccess  = "Usuario registrado correctamente."
	msgSubmitFailure  = "Ocurrió un error al registrar el usuario."
	msgSubmitDisabled = "Completa todos los campos correctamente antes de registrar."
)

// Controller owns all state of one mounted registration form: input
// values, per-field errors, touched flags, the debounced availability
// check and the submission state machine. Event methods (SetField, Blur,
// Submit) run to completion under a single lock, mirroring a UI event
// loop; the availability lookup and the registration call run off the
// lock so input handling is never blocked.
type Controller struct {
	mu        sync.Mutex
	clock     Clock
	lookup    AvailabilityLookup
	registrar Registrar

	ctx    context.Context
	cancel context.CancelFunc

	form    Form
	errors  map[Field]string
	touched map[Field]bool

	availability Availability
	checking     bool
	gen          uint64 // bumped on every email edit; stale results carry an older gen
	debounce     Timer

	phase      Phase
	formError  string
	successMsg string
	dismiss    Timer

	closed bool
}

// New creates a controller with empty form state. A nil clock selects
// the system clock.
func New(lookup AvailabilityLookup, registrar Registrar, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		clock:     clock,
		lookup:    lookup,
		registrar: registrar,
		ctx:       ctx,
		cancel:    cancel,
		errors:    make(map[Field]string),
		touched:   make(map[Field]bool),
	}
}

// SetField records a keystroke edit to one field and recomputes the
// derived state that depends on it.
func (c *Controller) SetField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	switch field {
	case FieldName:
		c.form.Name = value
	case FieldEmail:
		c.form.Email = value
	case FieldPassword:
		c.form.Password = value
	case FieldConfirmPassword:
		c.form.ConfirmPassword = value
	default:
		return
	}

	c.setError(field, Validate(field, value, c.form))

	// Editing either password field must refresh the mismatch error
	// against the latest counterpart, not only when the confirmation
	// field itself changes.
	if field == FieldPassword {
		c.setError(FieldConfirmPassword, Validate(FieldConfirmPassword, c.form.ConfirmPassword, c.form))
	}

	if field == FieldEmail {
		c.restartAvailabilityCheck(value)
	}
}

// Blur marks a field as touched, which turns on error rendering for it.
// Touched is monotonic until a successful submission resets the form.
func (c *Controller) Blur(field Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.touched[field] = true
	c.setError(field, Validate(field, c.fieldValue(field), c.form))
}

// restartAvailabilityCheck supersedes any pending or in-flight check and,
// when the new value is statically valid, schedules a fresh debounced
// lookup. Caller holds the lock.
func (c *Controller) restartAvailabilityCheck(email string) {
	c.gen++
	c.availability = AvailabilityUnknown
	c.checking = false
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}

	if Validate(FieldEmail, email, c.form) != "" {
		return
	}

	gen := c.gen
	c.checking = true
	c.debounce = c.clock.AfterFunc(DebounceInterval, func() {
		c.runAvailabilityCheck(gen, email)
	})
}

// runAvailabilityCheck executes one lookup scheduled by the debounce
// timer. The generation is checked both before and after the call so a
// result for a superseded value is never applied.
func (c *Controller) runAvailabilityCheck(gen uint64, email string) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	ctx := c.ctx
	c.mu.Unlock()

	available, err := c.lookup.CheckEmail(ctx, email)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		return
	}
	c.checking = false
	if err != nil {
		logger.Log.Errorw("email availability check failed", "email", email, "error", err)
		c.availability = AvailabilityUnknown
		return
	}
	if available {
		c.availability = AvailabilityAvailable
	} else {
		c.availability = AvailabilityTaken
	}
}

// CanSubmit reports the aggregated submit decision: every field valid
// against the current snapshot (touched or not), email availability
// confirmed, and no submission in flight.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	if c.phase == PhaseSubmitting {
		return false
	}
	if len(ValidateForm(c.form)) != 0 {
		return false
	}
	return c.availability == AvailabilityAvailable
}

// SubmitDisabledReason returns the tooltip text for the disabled submit
// control, or "" when submission is enabled.
func (c *Controller) SubmitDisabledReason() string {
	if c.CanSubmit() {
		return ""
	}
	return msgSubmitDisabled
}

// Submit runs the submission sequence: mark everything touched, take a
// final validation pass, and when the form holds up invoke the registrar
// off the lock. A failed registration keeps the user's input so it can
// be corrected and resubmitted.
func (c *Controller) Submit() {
	c.mu.Lock()
	if c.closed || c.phase == PhaseSubmitting {
		c.mu.Unlock()
		return
	}

	for _, f := range Fields {
		c.touched[f] = true
	}
	errs := ValidateForm(c.form)
	c.errors = errs

	if len(errs) != 0 || c.availability != AvailabilityAvailable {
		c.mu.Unlock()
		return
	}

	c.phase = PhaseSubmitting
	c.formError = ""
	form := c.form
	ctx := c.ctx
	c.mu.Unlock()

	go func() {
		err := c.registrar.Register(ctx, form.Name, form.Email, form.Password)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		if err != nil {
			logger.Log.Errorw("user registration failed", "email", form.Email, "error", err)
			c.phase = PhaseFailed
			c.formError = msgSubmitFailure
			return
		}
		c.resetLocked()
		c.phase = PhaseSucceeded
		c.successMsg = msgSubmitSuccess
		c.dismiss = c.clock.AfterFunc(SuccessDismissDelay, c.dismissSuccess)
	}()
}

func (c *Controller) dismissSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.phase != PhaseSucceeded {
		return
	}
	c.successMsg = ""
	c.phase = PhaseIdle
}

// resetLocked returns the form to its freshly mounted state. Caller
// holds the lock.
func (c *Controller) resetLocked() {
	c.form = Form{}
	c.errors = make(map[Field]string)
	c.touched = make(map[Field]bool)
	c.availability = AvailabilityUnknown
	c.checking = false
	c.gen++
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
}

// Close cancels every pending timer and in-flight call. The controller
// ignores all events afterwards; timers already fired never mutate a
// closed controller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
	if c.dismiss != nil {
		c.dismiss.Stop()
		c.dismiss = nil
	}
}

// Form returns a copy of the current input values.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Phase returns the submission phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Availability returns the tri-state availability of the current email.
func (c *Controller) Availability() Availability {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.availability
}

// AvailabilityMessage returns the text rendered under the email input:
// the pending notice while a check is scheduled or in flight, the
// resolved answer afterwards, and "" when no check applies.
func (c *Controller) AvailabilityMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checking {
		return msgChecking
	}
	switch c.availability {
	case AvailabilityAvailable:
		return msgEmailAvailable
	case AvailabilityTaken:
		return msgEmailTaken
	}
	return ""
}

// FieldError returns the current validation message for a field
// regardless of touched state.
func (c *Controller) FieldError(field Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors[field]
}

// VisibleError returns the validation message for a field only once the
// field has been touched.
func (c *Controller) VisibleError(field Field) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.touched[field] {
		return ""
	}
	return c.errors[field]
}

// Touched reports whether the field has lost focus at least once in the
// current submission cycle.
func (c *Controller) Touched(field Field) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[field]
}

// FormError returns the form-level error banner text, if any.
func (c *Controller) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// SuccessMessage returns the success banner text until it auto-dismisses.
func (c *Controller) SuccessMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.successMsg
}

// setError stores or clears a field error. Caller holds the lock.
func (c *Controller) setError(field Field, msg string) {
	if msg == "" {
		delete(c.errors, field)
		return
	}
	c.errors[field] = msg
}

func (c *Controller) fieldValue(field Field) string {
	switch field {
	case FieldName:
		return c.form.Name
	case FieldEmail:
		return c.form.Email
	case FieldPassword:
		return c.form.Password
	case FieldConfirmPassword:
		return c.form.ConfirmPassword
	}
	return ""
}
