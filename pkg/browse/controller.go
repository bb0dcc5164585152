package browse

import (
	"context"
	"errors"
	"time"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/filetug/allocfs/pkg/classify"
	"github.com/filetug/allocfs/pkg/files"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultFetchTimeout bounds a single remote call.
const DefaultFetchTimeout = 30 * time.Second

type Option func(*Controller)

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithGo replaces the function used to start fetches in the background.
func WithGo(spawn func(func())) Option {
	return func(c *Controller) {
		c.spawn = spawn
	}
}

// WithOnChange registers a callback invoked on the event loop after every state change.
func WithOnChange(f func(State)) Option {
	return func(c *Controller) {
		c.onChange = f
	}
}

func WithFetchTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

func WithPreviewLimit(limit int) Option {
	return func(c *Controller) {
		c.previewLimit = limit
	}
}

// request identifies one issued fetch. A result is applied only while
// the request is still the current one of its kind.
type request struct {
	session uuid.UUID
	seq     uint64
	target  string
}

// Controller is the navigation state machine of the file browser.
// All methods must be called on the host's event loop; fetch results are
// delivered back to it through queueUpdate.
type Controller struct {
	listing     *ListingService
	viewer      *ContentViewer
	queueUpdate func(func())
	spawn       func(func())
	onChange    func(State)
	log         logrus.FieldLogger

	timeout      time.Duration
	previewLimit int

	session    *Session
	state      State
	seq        uint64
	listingReq request
	contentReq request
}

func NewController(client allocfs.Client, queueUpdate func(func()), o ...Option) *Controller {
	c := &Controller{
		queueUpdate: queueUpdate,
		spawn: func(f func()) {
			go f()
		},
		log:          logrus.StandardLogger(),
		timeout:      DefaultFetchTimeout,
		previewLimit: DefaultContentLimit,
		state:        rootState(),
	}
	for _, opt := range o {
		opt(c)
	}
	c.listing = NewListingService(client)
	c.viewer = NewContentViewer(client, WithContentLimit(c.previewLimit))
	return c
}

// State returns a copy of the current navigation state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Session returns the live session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Open starts a session for the allocation and task unless it is already the live one.
func (c *Controller) Open(allocID, taskName string) {
	if c.session.matches(allocID, taskName) {
		return
	}
	c.SessionReset(allocID, taskName)
}

// SessionReset replaces the session, resets navigation to the root and
// invalidates every request issued before.
func (c *Controller) SessionReset(allocID, taskName string) {
	c.session = newSession(allocID, taskName)
	c.listingReq = request{}
	c.contentReq = request{}
	c.state = rootState()
	c.logger().Debug("session started")
	c.Navigate(files.Root)
}

// Close tears the session down. Results still in flight are dropped.
func (c *Controller) Close() {
	if c.session != nil {
		c.logger().Debug("session closed")
	}
	c.session = nil
	c.listingReq = request{}
	c.contentReq = request{}
	c.state = rootState()
	c.changed()
}

func (c *Controller) Navigate(p string) {
	if c.session == nil {
		c.log.Debug("navigate ignored: no session")
		return
	}
	p = files.CleanPath(p)
	c.state.CurrentPath = p
	c.state.Breadcrumbs = Breadcrumbs(p)
	c.state.clearContent()
	c.contentReq = request{}
	c.state.Listing = nil
	c.state.ErrorMessage = ""
	c.fetchListing()
	c.changed()
}

// NavigateCrumb navigates to the i-th breadcrumb.
func (c *Controller) NavigateCrumb(i int) {
	if i < 0 || i >= len(c.state.Breadcrumbs) {
		return
	}
	c.Navigate(c.state.Breadcrumbs[i].Path)
}

// Refresh reloads the current directory keeping selection and preview.
func (c *Controller) Refresh() {
	if c.session == nil {
		return
	}
	c.fetchListing()
	c.changed()
}

func (c *Controller) Back() {
	if c.session == nil || files.IsRoot(c.state.CurrentPath) {
		return
	}
	c.Navigate(files.ParentPath(c.state.CurrentPath))
}

// SelectFile enters directories and previews text files.
// Entries that are not preview candidates are ignored.
func (c *Controller) SelectFile(entry files.FileEntry) {
	if c.session == nil {
		return
	}
	if entry.IsDir {
		c.Navigate(files.JoinPath(c.state.CurrentPath, entry.Name))
		return
	}
	if !classify.Classify(entry).IsPreviewCandidate {
		c.logger().WithField("file", entry.Name).Debug("not a preview candidate")
		return
	}
	selected := entry
	c.state.SelectedEntry = &selected
	c.state.Content = nil
	c.state.ContentStatus = ContentLoading
	c.state.ContentErrorMessage = ""
	c.fetchContent(files.JoinPath(c.state.CurrentPath, entry.Name), entry.Size)
	c.changed()
}

func (c *Controller) CloseFile() {
	c.state.clearContent()
	c.contentReq = request{}
	c.changed()
}

func (c *Controller) fetchListing() {
	req := c.newRequest(c.session.EffectivePath(c.state.CurrentPath))
	c.listingReq = req
	c.state.ListingStatus = ListingLoading
	allocID := c.session.AllocID
	log := c.requestLogger(req)
	log.Debug("listing requested")
	c.spawn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		listing, err := c.listing.List(ctx, allocID, req.target)
		c.queueUpdate(func() {
			c.applyListing(req, listing, err)
		})
	})
}

func (c *Controller) applyListing(req request, listing files.DirectoryListing, err error) {
	log := c.requestLogger(req)
	if req != c.listingReq {
		log.Debug("stale listing discarded")
		return
	}
	if err != nil {
		log.WithError(err).Warn("listing failed")
		c.state.ListingStatus = ListingError
		c.state.Listing = &files.DirectoryListing{Path: req.target, Entries: []files.FileEntry{}}
		c.state.ErrorMessage = errorMessage(err)
	} else {
		c.state.ListingStatus = ListingReady
		c.state.Listing = &listing
		c.state.ErrorMessage = ""
	}
	c.changed()
}

func (c *Controller) fetchContent(filePath string, size uint64) {
	req := c.newRequest(c.session.EffectivePath(filePath))
	c.contentReq = req
	allocID := c.session.AllocID
	log := c.requestLogger(req)
	log.Debug("content requested")
	c.spawn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		content, err := c.viewer.ReadSized(ctx, allocID, req.target, size)
		c.queueUpdate(func() {
			c.applyContent(req, content, err)
		})
	})
}

func (c *Controller) applyContent(req request, content string, err error) {
	log := c.requestLogger(req)
	if req != c.contentReq {
		log.Debug("stale content discarded")
		return
	}
	if err != nil {
		log.WithError(err).Warn("read failed")
		c.state.ContentStatus = ContentError
		c.state.ContentErrorMessage = errorMessage(err)
	} else {
		c.state.ContentStatus = ContentReady
		c.state.Content = &content
	}
	c.changed()
}

func (c *Controller) newRequest(target string) request {
	c.seq++
	return request{
		session: c.session.ID,
		seq:     c.seq,
		target:  target,
	}
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.State())
	}
}

func (c *Controller) logger() logrus.FieldLogger {
	if c.session == nil {
		return c.log
	}
	return c.log.WithFields(logrus.Fields{
		"session": c.session.ID.String(),
		"alloc":   c.session.AllocID,
		"task":    c.session.TaskName,
	})
}

func (c *Controller) requestLogger(req request) logrus.FieldLogger {
	return c.log.WithFields(logrus.Fields{
		"session": req.session.String(),
		"path":    req.target,
		"seq":     req.seq,
	})
}

func errorMessage(err error) string {
	var listingErr *ListingFetchError
	if errors.As(err, &listingErr) {
		return listingErr.Message
	}
	var contentErr *ContentFetchError
	if errors.As(err, &contentErr) {
		return contentErr.Message
	}
	return err.Error()
}
