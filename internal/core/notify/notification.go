package notify

import (
	"errors"
	"fmt"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/toaster/internal/core/validate"
)

// Kind is the semantic category of a notification. The store carries it through
// untouched; renderers map it to an icon and color.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Kinds returns every recognized kind in display order.
func Kinds() []Kind {
	return []Kind{KindSuccess, KindError, KindWarning, KindInfo}
}

// IsValid reports whether k is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	default:
		return false
	}
}

// ID identifies a notification for the lifetime of the store that issued it.
type ID string

// Action is a single affordance the user can trigger without dismissing the
// notification.
type Action struct {
	Label      string
	OnActivate func() error
}

// Payload is the caller-supplied content of a notification.
type Payload struct {
	Kind    Kind
	Title   string
	Message string
	Action  *Action

	// Lifetime overrides the renderer's default auto-expiry. Zero uses the
	// default, a negative value keeps the notification until dismissed.
	Lifetime time.Duration
}

// Validate checks the payload can be enqueued.
func (p Payload) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("kind", p.Kind, kindIsValid),
		validate.RequiredField("message", p.Message),
		validateAction(p.Action),
	)
}

var errMissingCallback = errors.New("is required")

func validateAction(a *Action) error {
	if a == nil {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	if err := validate.Required(a.Label); err != nil {
		errs = errs.Append("action.label", err)
	}
	if a.OnActivate == nil {
		errs = errs.Append("action.on_activate", errMissingCallback)
	}
	return errs.ToError()
}

func kindIsValid(k Kind) error {
	if !k.IsValid() {
		return fmt.Errorf("unknown kind %q", k)
	}
	return nil
}

// Notification is a single queued message.
type Notification struct {
	ID        ID
	Kind      Kind
	Title     string
	Message   string
	Action    *Action
	Lifetime  time.Duration
	CreatedAt time.Time
}

// HasAction reports whether the notification carries an activatable action.
func (n Notification) HasAction() bool {
	return n.Action != nil && n.Action.OnActivate != nil
}
