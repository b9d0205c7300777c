package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/coach"
	"github.com/alexanderramin/mvpcoach/internal/db"
	"github.com/alexanderramin/mvpcoach/internal/domain"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/report"
	"github.com/alexanderramin/mvpcoach/internal/repository"
	"github.com/alexanderramin/mvpcoach/internal/service"
	"github.com/alexanderramin/mvpcoach/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	sessions := service.NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteAnswerRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)

	return &App{
		Sessions:   sessions,
		Validation: service.NewValidationService(sessions),
		Coach:      coach.NewCoachService(nil),
		OutDir:     t.TempDir(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// executeWithInput runs a command whose prompts read the given lines.
func executeWithInput(t *testing.T, app *App, lines []string, args ...string) (string, error) {
	t.Helper()
	app.In = strings.NewReader(strings.Join(lines, "\n") + "\n")
	return executeCmd(t, app, args...)
}

// wizardLines answers the whole script. The first problem answer is a
// solution pitched at everyone; the coach flags it as critical, the blank
// line picks the default "revise" and the next line is the rewrite.
func wizardLines() []string {
	return []string{
		"Listly",
		"Shared todo lists for small households",
		"An app for everyone",
		"",
		"Couples forget groceries every week because lists live in separate apps",
		"9",
		"Couples sharing a household",
		"Share todo lists instantly by link without accounts",
		"Create todo items, Share list by link, Mark todo items as done",
		"",
		"Rails, Postgres",
		"200",
		"8",
		"no",
		"Couples sharing a household",
		"Post in two local parenting forums, aiming for 50 signups",
	}
}

func onlySession(t *testing.T, app *App, includeClosed bool) *domain.Session {
	t.Helper()
	sessions, err := app.Sessions.List(context.Background(), includeClosed)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	return sessions[0]
}

func TestStart_WizardCompletesAndWritesDocuments(t *testing.T) {
	app := testApp(t)
	outDir := filepath.Join(t.TempDir(), "docs")

	out, err := executeWithInput(t, app, wizardLines(), "start", "--no-ai", "--experience", "expert", "--out", outDir)
	require.NoError(t, err, out)

	assert.Contains(t, out, "Started session")
	assert.Contains(t, out, "(expert)")
	assert.Contains(t, out, "Question 1 of 14")
	assert.Contains(t, out, "Question 14 of 14")
	assert.Contains(t, out, "This describes a solution, not a problem")
	assert.Contains(t, out, "Revise my answer")
	assert.NotContains(t, out, "Let the coach rewrite it")
	assert.Contains(t, out, "Ready to build")
	assert.Contains(t, out, "Documents written")

	for _, name := range []string{report.PRDFile, report.RoadmapJSONFile, report.RoadmapYAMLFile} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}
	prd, err := os.ReadFile(filepath.Join(outDir, report.PRDFile))
	require.NoError(t, err)
	assert.Contains(t, string(prd), "# Listly")

	s := onlySession(t, app, true)
	assert.Equal(t, domain.SessionCompleted, s.Status)
	assert.Equal(t, "Listly", s.ProjectName)
	assert.Equal(t, domain.ExperienceExpert, s.Experience)

	history, err := app.Sessions.History(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, history, 14)
	assert.Equal(t, "Couples forget groceries every week because lists live in separate apps", history[2].AnswerText)
}

func TestStart_QuitKeepsProgressAndResumeFinishes(t *testing.T) {
	app := testApp(t)
	lines := wizardLines()

	out, err := executeWithInput(t, app, lines[:2], "start", "--no-ai")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress saved. Resume with: mvpcoach resume")

	s := onlySession(t, app, false)
	assert.Equal(t, domain.SessionInProgress, s.Status)
	assert.Equal(t, domain.ExperienceIntermediate, s.Experience)

	out, err = executeWithInput(t, app, lines[2:], "resume", s.ID[:8], "--no-ai")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Resuming Listly")
	assert.Contains(t, out, "Question 3 of 14")
	assert.NotContains(t, out, "Question 1 of 14")
	assert.Contains(t, out, "Documents written")

	s = onlySession(t, app, true)
	assert.Equal(t, domain.SessionCompleted, s.Status)

	_, err = executeCmd(t, app, "resume", s.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
}

func TestStart_QuitFromActionMenu(t *testing.T) {
	app := testApp(t)

	out, err := executeWithInput(t, app, []string{"Listly", "Shared todo lists for small households", "An app for everyone", "quit"}, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress saved")

	s := onlySession(t, app, false)
	history, err := app.Sessions.History(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestStart_KeepFlaggedAnswer(t *testing.T) {
	app := testApp(t)

	_, err := executeWithInput(t, app, []string{"Listly", "Shared todo lists for small households", "An app for everyone", "keep"}, "start")
	require.NoError(t, err)

	s := onlySession(t, app, false)
	history, err := app.Sessions.History(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "An app for everyone", history[2].AnswerText)
}

func TestStart_RejectsUnknownExperience(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "start", "--experience", "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown experience level")
}

func TestSessions_ListAndAbandon(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s, err := app.Sessions.Start(ctx, "Listly", domain.ExperienceBeginner)
	require.NoError(t, err)
	q, _ := questions.ByID(questions.IDProjectName)
	_, err = app.Sessions.RecordAnswer(ctx, s.ID, q, "Listly")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "sessions")
	require.NoError(t, err)
	assert.Contains(t, out, s.ID[:8])
	assert.Contains(t, out, "1/14")
	assert.Contains(t, out, "In progress")

	out, err = executeCmd(t, app, "abandon", s.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Abandoned session")

	out, err = executeCmd(t, app, "sessions")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet")

	out, err = executeCmd(t, app, "sessions", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Abandoned")
}

func TestHistory(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s, err := app.Sessions.Start(ctx, "", "")
	require.NoError(t, err)
	q, _ := questions.ByID(questions.IDProjectName)
	_, err = app.Sessions.RecordAnswer(ctx, s.ID, q, "Listly")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "history", s.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "LISTLY")
	assert.Contains(t, out, q.Text)
	assert.Contains(t, out, "[project-name]")

	out, err = executeCmd(t, app, "history", s.ID, "--json")
	require.NoError(t, err)
	var entries []domain.AnswerEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, questions.IDProjectName, entries[0].QuestionID)
	assert.Equal(t, "Listly", entries[0].AnswerText)

	_, err = executeCmd(t, app, "history", "nope")
	require.Error(t, err)
}

const readyAnswersYAML = `experience: intermediate
answers:
  project_name: Listly
  project_description: Shared todo lists for small households
  problem: Couples forget groceries because lists live in separate apps
  pain_level: 9
  target_audience: Couples sharing a household
  value_proposition: Share todo lists instantly by link
  core_features:
    - Create todo items
    - Share list by link
    - Mark todo items as done
  tech_stack: Rails, Postgres
  user_scale: 200
  timeline: 8 weeks
  reuse_code: no
  launch_audience: Couples sharing a household
  launch_plan: Post in two local parenting forums
`

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate_AnswersFileJSON(t *testing.T) {
	app := testApp(t)
	path := writeAnswers(t, readyAnswersYAML)

	out, err := executeCmd(t, app, "validate", "--answers", path, "--json")
	require.NoError(t, err, out)

	var got struct {
		ShouldProceed bool `json:"should_proceed"`
		Readiness     struct {
			Score int `json:"score"`
		} `json:"readiness"`
		Priorities []json.RawMessage `json:"priorities"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.ShouldProceed)
	assert.Equal(t, 100, got.Readiness.Score)
	assert.Len(t, got.Priorities, 3)
}

func TestValidate_Session(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	s, err := app.Sessions.Start(ctx, "", "")
	require.NoError(t, err)
	for _, q := range questions.Script() {
		_, err := app.Sessions.RecordAnswer(ctx, s.ID, q, testutil.ReadyAnswers()[q.ID])
		require.NoError(t, err)
	}

	out, err := executeCmd(t, app, "validate", s.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "LISTLY")
	assert.Contains(t, out, "Ready to build")
	assert.Contains(t, out, "CONSISTENCY")
}

func TestValidate_SourceErrors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--answers FILE is required")

	path := writeAnswers(t, readyAnswersYAML)
	_, err = executeCmd(t, app, "validate", "abc", "--answers", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")

	bad := writeAnswers(t, "answers:\n  favourite_color: blue\n  project_name: X\n")
	_, err = executeCmd(t, app, "validate", "--answers", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question id(s): favourite_color")

	nested := writeAnswers(t, "answers:\n  project_name:\n    nested: map\n")
	_, err = executeCmd(t, app, "validate", "--answers", nested)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be text or a list")
}

func TestRender_AnswersFile(t *testing.T) {
	app := testApp(t)
	path := writeAnswers(t, readyAnswersYAML)
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := executeCmd(t, app, "render", "--answers", path, "--out", outDir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "ROADMAP")
	assert.Contains(t, out, "Launch (week")

	data, err := os.ReadFile(filepath.Join(outDir, report.RoadmapJSONFile))
	require.NoError(t, err)
	var rm report.Roadmap
	require.NoError(t, json.Unmarshal(data, &rm))
	assert.Equal(t, "Listly", rm.Project)
	assert.True(t, rm.ShouldProceed)
}

func TestRender_DefaultsToAppOutDir(t *testing.T) {
	app := testApp(t)
	path := writeAnswers(t, readyAnswersYAML)

	_, err := executeCmd(t, app, "render", "--answers", path)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(app.OutDir, report.PRDFile))
}

func TestLoadAnswersFile_ScriptOrder(t *testing.T) {
	path := writeAnswers(t, "experience: Beginner\nanswers:\n  timeline: 6 weeks\n  project_name: Listly\n  core_features: [a b, c d]\n")

	history, experience, err := loadAnswersFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ExperienceBeginner, experience)
	require.Len(t, history, 3)
	assert.Equal(t, questions.IDProjectName, history[0].QuestionID)
	assert.Equal(t, questions.IDCoreFeatures, history[1].QuestionID)
	assert.Equal(t, "a b\nc d", history[1].AnswerText)
	assert.Equal(t, questions.IDTimeline, history[2].QuestionID)
	assert.Equal(t, 3, history[2].Seq)
}
