package spec

type Config struct {
	Version int          `yaml:"version"`
	Corpus  CorpusConfig `yaml:"corpus"`
	Quiz    QuizConfig   `yaml:"quiz"`
	Labels  LabelConfig  `yaml:"labels"`
	Grades  []GradeBand  `yaml:"grades"`
}

type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

type QuizConfig struct {
	Shuffle *bool  `yaml:"shuffle"`
	UI      string `yaml:"ui"`
}

// LabelConfig lists the accepted spellings for each block label.
type LabelConfig struct {
	Question []string `yaml:"question"`
	Answer   []string `yaml:"answer"`
	Note     []string `yaml:"note"`
}

// GradeBand maps a minimum percentage to a feedback message.
type GradeBand struct {
	MinPercent int    `yaml:"min_percent"`
	Message    string `yaml:"message"`
}
