package console

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotation-service/internal/domain"
	"github.com/jsamuelsen/quotation-service/internal/platform/logging"
	"github.com/jsamuelsen/quotation-service/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// DeletedMessage is shown after a successful delete.
const DeletedMessage = "Quotation deleted successfully"

// Notice kinds.
const (
	NoticeError   = "error"
	NoticeSuccess = "success"
)

// Notice is a one-shot banner shown on the next page render.
type Notice struct {
	Kind string
	Text string
}

// Config configures a Console.
type Config struct {
	// Title is the page heading.
	Title string

	API    ports.QuotationAPI
	Logger *slog.Logger
}

// Console serves the quotation pages.
type Console struct {
	title   string
	board   *Board
	session *Session
	logger  *slog.Logger

	mu     sync.Mutex
	notice *Notice
}

// New creates a Console over api.
func New(cfg Config) *Console {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	title := cfg.Title
	if title == "" {
		title = "Quotation Management"
	}

	return &Console{
		title:   title,
		board:   NewBoard(cfg.API, logger),
		session: NewSession(),
		logger:  logger,
	}
}

// Board returns the local list cache.
func (c *Console) Board() *Board {
	return c.board
}

// Session returns the add/edit session.
func (c *Console) Session() *Session {
	return c.session
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("console").Funcs(template.FuncMap{
		"statusClass": statusClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing console templates: %w", err)
	}

	return tmpl, nil
}

// RegisterRoutes installs the templates and page routes on engine.
func (c *Console) RegisterRoutes(engine *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}

	engine.SetHTMLTemplate(tmpl)

	engine.GET("/", c.Index)
	engine.POST("/retry", c.Retry)
	engine.GET("/quotations/new", c.OpenAdd)
	engine.GET("/quotations/:id/edit", c.OpenEdit)
	engine.POST("/session/cancel", c.Cancel)
	engine.POST("/session/submit", c.Submit)
	engine.GET("/quotations/:id/delete", c.ConfirmDelete)
	engine.POST("/quotations/:id/delete", c.Delete)

	return nil
}

type indexPage struct {
	Title     string
	Items     []domain.QuotationRequest
	LoadError string
	Notice    *Notice
	Session   SessionView
	Types     []domain.QuotationType
	Statuses  []domain.QuotationStatus
}

type confirmPage struct {
	Title  string
	Record domain.QuotationRequest
}

// Index renders the table, and the modal when a session is open.
// The list is fetched on the first view only.
func (c *Console) Index(ctx *gin.Context) {
	c.board.EnsureLoaded(ctx.Request.Context())
	c.render(ctx, http.StatusOK)
}

// Retry reloads the list after a failed load.
func (c *Console) Retry(ctx *gin.Context) {
	if err := c.board.Load(ctx.Request.Context()); err == nil {
		c.flash(NoticeSuccess, "Quotations reloaded")
	}

	redirectHome(ctx)
}

// OpenAdd opens the modal with an empty form.
func (c *Console) OpenAdd(ctx *gin.Context) {
	if err := c.session.OpenAdd(); err != nil {
		c.flash(NoticeError, "Finish or cancel the open quotation first.")
	}

	redirectHome(ctx)
}

// OpenEdit opens the modal pre-populated with the selected record.
func (c *Console) OpenEdit(ctx *gin.Context) {
	rec, ok := c.record(ctx)
	if !ok {
		redirectHome(ctx)
		return
	}

	if err := c.session.OpenEdit(rec); err != nil {
		c.flash(NoticeError, "Finish or cancel the open quotation first.")
	}

	redirectHome(ctx)
}

// Cancel closes the modal without saving.
func (c *Console) Cancel(ctx *gin.Context) {
	c.session.Cancel()
	redirectHome(ctx)
}

// Submit validates the form locally and, when valid, saves it through the
// API. On failure the modal stays open with the messages and the list is
// left as it was.
func (c *Console) Submit(ctx *gin.Context) {
	view := c.session.View()
	if !view.Open() {
		c.flash(NoticeError, "No quotation is being edited.")
		redirectHome(ctx)

		return
	}

	var form Form
	if err := ctx.ShouldBind(&form); err != nil {
		c.flash(NoticeError, "The form could not be read.")
		redirectHome(ctx)

		return
	}

	if !form.Validate() {
		_ = c.session.Update(form)
		c.render(ctx, http.StatusUnprocessableEntity)

		return
	}

	reqCtx := ctx.Request.Context()
	logger := logging.FromContextOr(reqCtx, c.logger)

	var (
		saved *domain.QuotationRequest
		err   error
	)

	if view.Editing() {
		saved, err = c.board.Update(reqCtx, view.EditingID, form.Fields())
	} else {
		saved, err = c.board.Create(reqCtx, form.Fields())
	}

	if err != nil {
		logger.WarnContext(reqCtx, "saving quotation failed",
			slog.String("mode", view.Mode.String()),
			slog.Any("error", err),
		)

		form.Reject(err)
		_ = c.session.Update(form)
		c.render(ctx, statusFor(err))

		return
	}

	logger.InfoContext(reqCtx, "quotation saved",
		slog.String("mode", view.Mode.String()),
		slog.Int64("id", saved.ID),
	)

	c.session.Close()

	if view.Editing() {
		c.flash(NoticeSuccess, "Quotation updated")
	} else {
		c.flash(NoticeSuccess, "Quotation added")
	}

	redirectHome(ctx)
}

// ConfirmDelete asks before deleting.
func (c *Console) ConfirmDelete(ctx *gin.Context) {
	rec, ok := c.record(ctx)
	if !ok {
		redirectHome(ctx)
		return
	}

	ctx.HTML(http.StatusOK, "confirm.html", confirmPage{Title: c.title, Record: rec})
}

// Delete removes the record after confirmation.
func (c *Console) Delete(ctx *gin.Context) {
	id, err := domain.ParseQuotationID(ctx.Param("id"))
	if err != nil {
		c.flash(NoticeError, "Quotation not found")
		redirectHome(ctx)

		return
	}

	reqCtx := ctx.Request.Context()

	if err := c.board.Delete(reqCtx, id); err != nil {
		logging.FromContextOr(reqCtx, c.logger).WarnContext(reqCtx, "deleting quotation failed",
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		c.flash(NoticeError, "Failed to delete quotation: "+userMessage(err))
		redirectHome(ctx)

		return
	}

	c.session.CloseIfEditing(id)
	c.flash(NoticeSuccess, DeletedMessage)
	redirectHome(ctx)
}

// record resolves the :id parameter against the local list, falling back
// to the API for records the list does not show.
func (c *Console) record(ctx *gin.Context) (domain.QuotationRequest, bool) {
	id, err := domain.ParseQuotationID(ctx.Param("id"))
	if err != nil {
		c.flash(NoticeError, "Quotation not found")
		return domain.QuotationRequest{}, false
	}

	reqCtx := ctx.Request.Context()

	rec, err := c.board.Lookup(reqCtx, id)
	if err != nil {
		if !domain.IsNotFound(err) {
			logging.FromContextOr(reqCtx, c.logger).WarnContext(reqCtx, "fetching quotation failed",
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}

		c.flash(NoticeError, userMessage(err))

		return domain.QuotationRequest{}, false
	}

	return rec, true
}

func (c *Console) render(ctx *gin.Context, status int) {
	p := indexPage{
		Title:    c.title,
		Items:    c.board.Items(),
		Notice:   c.takeNotice(),
		Session:  c.session.View(),
		Types:    domain.AllQuotationTypes(),
		Statuses: domain.AllQuotationStatuses(),
	}

	if err := c.board.LoadError(); err != nil {
		p.LoadError = userMessage(err)
	}

	ctx.HTML(status, "index.html", p)
}

func (c *Console) flash(kind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notice = &Notice{Kind: kind, Text: text}
}

func (c *Console) takeNotice() *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.notice
	c.notice = nil

	return n
}

func redirectHome(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, "/")
}

// statusFor picks the page status for a failed save.
func statusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusUnprocessableEntity
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case domain.IsUnavailable(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func statusClass(s domain.QuotationStatus) string {
	switch s {
	case domain.QuotationStatusPending:
		return "pending"
	case domain.QuotationStatusInProgress:
		return "in-progress"
	case domain.QuotationStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
