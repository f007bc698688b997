package commands

import (
	"SurveySession/internal/config"
	"context"
	"encoding/json"
	"fmt"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show stored user session" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer closeStore(done)

	sess := s.Get()
	if sess == nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Fprintln(Out, string(b))
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
