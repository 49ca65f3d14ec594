package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	root   string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithRoot sets the site root directory the posts, layouts, and output
// paths are resolved against. Defaults to the working directory.
func WithRoot(root string) Option {
	return func(a *application) {
		a.root = root
	}
}
