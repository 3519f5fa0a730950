package config

// Config is the complete bitdoctor configuration
type Config struct {
	Doctor    Doctor    `koanf:"doctor" toml:"doctor"`
	Workspace Workspace `koanf:"workspace" toml:"workspace"`
	Output    Output    `koanf:"output" toml:"output"`
}

// Doctor controls how diagnoses run
type Doctor struct {
	MaxWorkers int      `koanf:"max_workers" toml:"max_workers" comment:"Upper bound on concurrent link resolutions. 0 means unbounded."`
	Diagnoses  []string `koanf:"diagnoses" toml:"diagnoses" comment:"Diagnoses to run when none are named on the command line. Empty runs all."`
}

// Workspace controls workspace discovery
type Workspace struct {
	Markers       []string `koanf:"markers" toml:"markers" comment:"Files that mark a workspace root"`
	ScopeDirs     []string `koanf:"scope_dirs" toml:"scope_dirs" comment:"Scope directories tried in order, relative to the workspace root"`
	ComponentsDir string   `koanf:"components_dir" toml:"components_dir" comment:"Directory inside the scope holding component environments"`
}

// Output controls report rendering
type Output struct {
	Format string `koanf:"format" toml:"format" comment:"auto, term, text, json, yaml, junit or markdown"`
	Width  int    `koanf:"width" toml:"width" comment:"Wrap width for rendered markdown. 0 uses the terminal width."`
}
