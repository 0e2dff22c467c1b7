package main

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringUsername
	stepEnteringPassword
	stepEnteringConfirm
	stepRegistering
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	username     string
	password     string
	confirm      string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:         stepEnteringServer,
		currentInput: DEFAULT_SERVER,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// registerAccount submits the registration form the same way the
// browser would. The server answers a successful registration with a
// redirect to the login page.
func registerAccount(serverURL, username, password, confirm string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		form := url.Values{}
		form.Set("username", username)
		form.Set("password", password)
		form.Set("password_confirm", confirm)

		resp, err := client.PostForm(strings.TrimRight(serverURL, "/")+"/register", form)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusFound && strings.HasPrefix(resp.Header.Get("Location"), "/login") {
			return registerSuccessMsg{}
		}
		return errMsg{fmt.Errorf("registration rejected (status %d) - check the username and password rules", resp.StatusCode)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.currentInput += string(msg.Runes)
			}
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepComplete
		m.message = ""
		return m, nil

	case errMsg:
		// Back to the username prompt so the run can be corrected.
		m.step = stepEnteringUsername
		m.currentInput = m.username
		m.message = msg.Error()
		return m, nil
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepEnteringServer:
		if m.currentInput == "" {
			m.currentInput = DEFAULT_SERVER
		}
		m.serverURL = m.currentInput
		m.currentInput = ""
		m.step = stepEnteringUsername

	case stepEnteringUsername:
		if m.currentInput == "" {
			m.message = "username is required"
			return m, nil
		}
		m.username = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		if m.currentInput == "" {
			m.message = "password is required"
			return m, nil
		}
		m.password = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringConfirm

	case stepEnteringConfirm:
		m.confirm = m.currentInput
		m.currentInput = ""
		m.message = ""
		m.step = stepRegistering
		return m, registerAccount(m.serverURL, m.username, m.password, m.confirm)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Todo Server - Account Setup"))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringServer:
		b.WriteString(promptStyle.Render("Server URL: "))
		b.WriteString(inputStyle.Render(m.currentInput))
		b.WriteString("\n\n(enter to accept)")

	case stepEnteringUsername:
		b.WriteString(promptStyle.Render("Username: "))
		b.WriteString(inputStyle.Render(m.currentInput))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepEnteringConfirm:
		b.WriteString(promptStyle.Render("Confirm password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput))))

	case stepRegistering:
		b.WriteString("Registering " + m.username + " at " + m.serverURL + "...")

	case stepComplete:
		b.WriteString(successStyle.Render("Account created!"))
		b.WriteString("\n\nLog in at " + m.serverURL + "/login as " + m.username + ".")
		b.WriteString("\n\n(enter to exit)")
	}

	b.WriteString("\n")
	return b.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
