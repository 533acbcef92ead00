package ui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/fyyur/internal/projection"
	"github.com/desertthunder/fyyur/internal/quiz"
	"github.com/desertthunder/fyyur/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CategoryView ViewState = iota
	QuestionView
	FeedbackView
	ScoreView
)

// Source supplies categories and quiz questions, usually over HTTP.
type Source interface {
	Categories(ctx context.Context) (projection.Categories, error)
	NextQuestion(ctx context.Context, category int64, previous []int64) (*projection.Question, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	source       Source
	rounds       int
	preset       *int64
	width        int
	height       int
	categoryList list.Model
	categories   projection.Categories
	category     categoryItem
	question     *projection.Question
	answer       textinput.Model
	guess        string
	correct      bool
	previous     []int64
	score        int
	exhausted    bool
	loading      bool
	err          error
	help         help.Model
	keys         keyMap
}

// NewModel creates a quiz player that asks up to rounds questions per play.
func NewModel(ctx context.Context, source Source, rounds int) *Model {
	if rounds < 1 {
		rounds = 1
	}

	answer := textinput.New()
	answer.Placeholder = "Your answer"
	answer.CharLimit = 200

	return &Model{
		ctx:    ctx,
		view:   CategoryView,
		source: source,
		rounds: rounds,
		answer: answer,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// WithCategory skips the category list and plays id straight away.
func (m *Model) WithCategory(id int64) *Model {
	m.preset = &id
	return m
}

// Score reports correct answers and questions asked so far.
func (m *Model) Score() (int, int) {
	return m.score, len(m.previous)
}

// Err returns the error that stopped the player, if any.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the TUI by fetching the category list.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.fetchCategories()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if len(m.categoryList.Items()) > 0 {
			m.categoryList.SetSize(msg.Width-4, msg.Height-8)
		}
		m.answer.Width = max(msg.Width-8, 20)
		return m, nil

	case tea.KeyMsg:
		if m.err != nil {
			if key.Matches(msg, m.keys.quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.view {
		case CategoryView:
			return m.handleCategoryKeys(msg)
		case QuestionView:
			return m.handleQuestionKeys(msg)
		case FeedbackView:
			return m.handleFeedbackKeys(msg)
		case ScoreView:
			return m.handleScoreKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgCategoriesFetched:
			return m.categoriesFetched(msg.data.(categoriesPayload))
		case MsgQuestionFetched:
			return m.questionFetched(msg.data.(questionPayload))
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.wrong.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.loading {
		return styles.status.Render("Loading...")
	}

	switch m.view {
	case CategoryView:
		return m.renderCategories()
	case QuestionView:
		return m.renderQuestion()
	case FeedbackView:
		return m.renderFeedback()
	case ScoreView:
		return m.renderScore()
	default:
		return ""
	}
}

func (m *Model) categoriesFetched(p categoriesPayload) (tea.Model, tea.Cmd) {
	m.loading = false
	if p.err != nil {
		m.err = p.err
		return m, nil
	}

	m.categories = p.categories
	items := []list.Item{allCategories()}
	for _, id := range slices.Sorted(maps.Keys(p.categories)) {
		items = append(items, categoryItem{id: id, label: p.categories[id]})
	}

	m.categoryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.categoryList.Title = "Trivia Categories"
	m.categoryList.SetFilteringEnabled(false)
	m.categoryList.SetShowStatusBar(false)
	if m.width > 0 {
		m.categoryList.SetSize(m.width-4, m.height-8)
	}

	if m.preset != nil {
		id := *m.preset
		m.preset = nil
		for _, item := range items {
			if c := item.(categoryItem); c.id == id {
				return m, m.start(c)
			}
		}
		m.err = fmt.Errorf("%w: unknown category %d", shared.ErrInvalidArgument, id)
	}
	return m, nil
}

func (m *Model) questionFetched(p questionPayload) (tea.Model, tea.Cmd) {
	m.loading = false
	switch {
	case errors.Is(p.err, shared.ErrExhausted):
		m.exhausted = true
		m.view = ScoreView
		return m, nil
	case p.err != nil:
		m.err = p.err
		return m, nil
	}

	m.question = p.question
	m.guess = ""
	m.answer.Reset()
	m.view = QuestionView
	return m, m.answer.Focus()
}

func (m *Model) handleCategoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.enter):
		if selected, ok := m.categoryList.SelectedItem().(categoryItem); ok {
			return m, m.start(selected)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.categoryList, cmd = m.categoryList.Update(msg)
	return m, cmd
}

func (m *Model) handleQuestionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.abort):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.submit):
		guess := strings.TrimSpace(m.answer.Value())
		if guess == "" {
			return m, nil
		}
		m.guess = guess
		m.correct = quiz.Check(m.question.Answer, guess)
		if m.correct {
			m.score++
		}
		m.previous = append(m.previous, m.question.ID)
		m.answer.Blur()
		m.view = FeedbackView
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m *Model) handleFeedbackKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.next):
		if len(m.previous) >= m.rounds {
			m.view = ScoreView
			return m, nil
		}
		m.loading = true
		return m, m.fetchQuestion()
	}
	return m, nil
}

func (m *Model) handleScoreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.restart):
		m.reset()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CategoryView:
		m.categoryList, cmd = m.categoryList.Update(msg)
	case QuestionView:
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

// start begins a fresh play in category c.
func (m *Model) start(c categoryItem) tea.Cmd {
	m.category = c
	m.previous = nil
	m.score = 0
	m.exhausted = false
	m.loading = true
	return m.fetchQuestion()
}

func (m *Model) reset() {
	m.view = CategoryView
	m.question = nil
	m.previous = nil
	m.score = 0
	m.exhausted = false
	m.answer.Blur()
}

func (m *Model) fetchCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.source.Categories(m.ctx)
		return categoriesFetchedMsg(categories, err)
	}
}

func (m *Model) fetchQuestion() tea.Cmd {
	category := m.category.id
	previous := slices.Clone(m.previous)
	return func() tea.Msg {
		question, err := m.source.NextQuestion(m.ctx, category, previous)
		return questionFetchedMsg(question, err)
	}
}

func (m *Model) renderCategories() string {
	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.categoryList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) progress() string {
	return fmt.Sprintf("%s • question %d of %d • score %d", m.category.label, len(m.previous)+1, m.rounds, m.score)
}

func (m *Model) renderQuestion() string {
	title := styles.prompt.Render(m.question.Question)
	meta := styles.status.Render(fmt.Sprintf("%s • difficulty %d", m.progress(), m.question.Difficulty))
	helpKeys := []key.Binding{m.keys.submit, m.keys.back, m.keys.abort}
	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, meta, m.answer.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderFeedback() string {
	verdict := styles.verdict(m.correct)
	info := fmt.Sprintf("\nYou said: %s\nAnswer: %s\nScore: %d/%d", m.guess, styles.answer.Render(m.question.Answer), m.score, len(m.previous))
	helpKeys := []key.Binding{m.keys.next, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", verdict, info, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderScore() string {
	title := styles.prompt.Render("Quiz Complete")
	info := fmt.Sprintf("Category: %s\nScore: %d/%d", m.category.label, m.score, len(m.previous))

	var note string
	if m.exhausted {
		note = "\n\n" + styles.notice.Render("No more questions left in this category.")
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, note, m.help.ShortHelpView(helpKeys))
}
