package config

// Config is the top-level plantlore configuration, corresponding to .plantlore.yml.
type Config struct {
	Analysis    string       `yaml:"analysis" koanf:"analysis"`
	OutputDir   string       `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir   string       `yaml:"assets_dir" koanf:"assets_dir"`
	Assets      []string     `yaml:"assets" koanf:"assets"`
	Intro       string       `yaml:"intro" koanf:"intro"`
	Port        int          `yaml:"port" koanf:"port"`
	Locale      string       `yaml:"locale" koanf:"locale"`
	ListLimit   int          `yaml:"list_limit" koanf:"list_limit"`
	Strict      bool         `yaml:"strict" koanf:"strict"`
	DefaultView string       `yaml:"default_view" koanf:"default_view"`
	LogLevel    string       `yaml:"log_level" koanf:"log_level"`
	Labels      LabelsConfig `yaml:"labels" koanf:"labels"`
	Server      ServerConfig `yaml:"server" koanf:"server"`
}

// LabelsConfig names the two corpora in the chart and summary line.
type LabelsConfig struct {
	First  string `yaml:"first" koanf:"first"`
	Second string `yaml:"second" koanf:"second"`
}

// ServerConfig holds settings only used by `plantlore serve`.
type ServerConfig struct {
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
