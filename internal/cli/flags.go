package cli

import (
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/spf13/pflag"
)

// wizardFlags are shared by start and resume.
type wizardFlags struct {
	noAI   bool
	plain  bool
	outDir string
}

func (f *wizardFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.noAI, "no-ai", false, "Coach with the built-in heuristics only")
	fs.BoolVar(&f.plain, "plain", false, "Use plain line prompts instead of interactive forms")
	fs.StringVar(&f.outDir, "out", "", "Directory for the generated PRD and roadmap (default $MVPCOACH_OUT or ./"+DefaultOutDir+")")
}

// experienceValue is a pflag.Value that only accepts known experience levels.
type experienceValue domain.ExperienceLevel

var _ pflag.Value = (*experienceValue)(nil)

func (e *experienceValue) String() string {
	if *e == "" {
		return string(domain.ExperienceIntermediate)
	}
	return string(*e)
}

func (e *experienceValue) Set(s string) error {
	level, err := domain.ParseExperienceLevel(s)
	if err != nil {
		return err
	}
	*e = experienceValue(level)
	return nil
}

func (e *experienceValue) Type() string { return "level" }

func (e *experienceValue) level() domain.ExperienceLevel {
	return domain.ExperienceLevel(e.String())
}
