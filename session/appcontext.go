package session

// AppContext carries the application-shell state that used to live in
// free-floating globals: the current user, the active module and the
// navigator visibility flag. It is initialised once at startup and reset on
// logout; collaborators receive it explicitly instead of reaching for package
// state.
type AppContext struct {
	CurrentUser      *UserProfile
	ActiveModule     string
	NavigatorVisible bool
}

const defaultModule = "accounts"

// NewAppContext returns a context in its startup state.
func NewAppContext() *AppContext {
	ctx := &AppContext{}
	ctx.Reset()
	return ctx
}

// Init installs the logged-in user.
func (c *AppContext) Init(profile *UserProfile) {
	c.CurrentUser = profile
	c.ActiveModule = defaultModule
	c.NavigatorVisible = true
}

// Reset returns the context to its logged-out state.
func (c *AppContext) Reset() {
	c.CurrentUser = nil
	c.ActiveModule = defaultModule
	c.NavigatorVisible = true
}
