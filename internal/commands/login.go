package commands

import (
	"SurveySession/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// nowMillis возвращает текущее время в миллисекундах; подменяется в тестах.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Save user session (userInfo as JSON)" }
func (loginCmd) Usage() string       { return "login <userInfo-json> [loginTime]" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	var userInfo any
	if err := json.Unmarshal([]byte(args[0]), &userInfo); err != nil {
		return fmt.Errorf("userInfo must be valid JSON: %w", err)
	}
	var loginTime any = nowMillis()
	if len(args) == 2 {
		loginTime = parseLoginTime(args[1])
	}

	s, done, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer closeStore(done)
	if err := s.Set(userInfo, loginTime); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Session saved")
	return nil
}

// parseLoginTime принимает JSON-значение (число, строку в кавычках и т.п.),
// иначе сохраняет аргумент как строку.
func parseLoginTime(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err == nil {
		return v
	}
	return arg
}

func init() { RegisterCmd(loginCmd{}) }
