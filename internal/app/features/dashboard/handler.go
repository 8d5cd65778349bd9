// internal/app/features/dashboard/handler.go
package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/wastewise/internal/app/store/wastedata"
	"github.com/dalemusser/wastewise/internal/app/system/boundary"
	"github.com/dalemusser/wastewise/internal/app/system/prefs"
	"go.uber.org/zap"
)

// Subjects names the household, collector, officer and ward whose data the
// dashboards show. There is no sign-in, so these come from configuration.
type Subjects struct {
	HouseholdID string
	CollectorID string
	OfficerID   string
	Ward        string
}

type Handler struct {
	Source   wastedata.Source
	Prefs    *prefs.Manager
	Subjects Subjects
	Log      *zap.Logger
	Now      func() time.Time
}

func NewHandler(src wastedata.Source, pm *prefs.Manager, subjects Subjects, logger *zap.Logger) *Handler {
	return &Handler{
		Source:   src,
		Prefs:    pm,
		Subjects: subjects,
		Log:      logger,
		Now:      time.Now,
	}
}

// fail hands a loader error to the route boundary. Unknown subjects get a
// message naming what was missing; anything else shows the default text.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var nf *notFound
	if errors.As(err, &nf) {
		err = boundary.WithMessage(err, fmt.Sprintf("No %s with ID %s was found.", nf.what, nf.id))
	}
	boundary.Fail(w, r, err)
}

// notFound records which subject a loader could not find.
type notFound struct {
	what string
	id   string
	err  error
}

func (e *notFound) Error() string { return fmt.Sprintf("%s %s: %v", e.what, e.id, e.err) }
func (e *notFound) Unwrap() error { return e.err }

// lookup wraps a loader error. ErrNotFound for a named subject is tagged so
// fail can explain it.
func lookup(what, id string, err error) error {
	if err == nil {
		return nil
	}
	if id != "" && errors.Is(err, wastedata.ErrNotFound) {
		return &notFound{what: what, id: id, err: err}
	}
	return fmt.Errorf("load %s: %w", what, err)
}
