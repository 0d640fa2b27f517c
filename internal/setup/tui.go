package setup

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/coindash/config"
	"github.com/vadiminshakov/coindash/internal/domain"
)

// DefaultOutput is the file the wizard writes.
const DefaultOutput = "config.gen.yaml"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// Answers raw wizard input.
type Answers struct {
	Addr        string
	APIBaseURL  string
	TopN        string
	DefaultDays string
	LogLevel    string
	AutoTLS     bool
	Domains     string
}

func defaultAnswers() Answers {
	def := config.Default()
	return Answers{
		Addr:        def.Addr,
		APIBaseURL:  def.APIBaseURL,
		TopN:        strconv.Itoa(def.TopN),
		DefaultDays: strconv.Itoa(def.DefaultDays),
		LogLevel:    def.LogLevel,
	}
}

// RunTUI launches the terminal configuration wizard and writes the result to output.
func RunTUI(output string) error {
	if output == "" {
		output = DefaultOutput
	}
	answers := defaultAnswers()
	var confirm bool

	// step 1: server
	printStep("STEP 1: SERVER")
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Let's get your market dashboard online.\n"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Listen Address").
				Description("host:port the dashboard listens on (e.g. :8080)").
				Value(&answers.Addr).
				Validate(validateAddr),
			huh.NewSelect[string]().
				Title("Log Level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&answers.LogLevel),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 2: market data
	printStep("STEP 2: MARKET DATA")
	dayOptions := make([]huh.Option[string], 0, len(domain.DayRanges))
	for _, d := range domain.DayRanges {
		dayOptions = append(dayOptions, huh.NewOption(fmt.Sprintf("%d days", d), strconv.Itoa(d)))
	}
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("API Base URL").
				Description("CoinGecko v3 compatible endpoint").
				Value(&answers.APIBaseURL).
				Validate(validateBaseURL),
			huh.NewInput().
				Title("Top N Coins").
				Description(fmt.Sprintf("Coins listed by market cap (1-%d)", config.MaxTopN)).
				Value(&answers.TopN).
				Validate(validateTopN),
			huh.NewSelect[string]().
				Title("Default Day Range").
				Options(dayOptions...).
				Value(&answers.DefaultDays),
		),
	).Run()
	if err != nil {
		return err
	}

	// step 3: tls
	printStep("STEP 3: TLS")
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable automatic TLS (Let's Encrypt)?").
				Value(&answers.AutoTLS),
		),
	).Run()
	if err != nil {
		return err
	}
	if answers.AutoTLS {
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Domains").
					Description("Comma separated (e.g. dash.example.com)").
					Value(&answers.Domains).
					Validate(func(s string) error {
						if len(splitList(s)) == 0 {
							return errors.New("at least one domain is required")
						}
						return nil
					}),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	// confirmation
	printStep("FINAL CONFIRMATION")
	summary := fmt.Sprintf(
		"Address: %s\nAPI: %s\nTop N: %s\nDefault days: %s\nAuto TLS: %t\n",
		answers.Addr, answers.APIBaseURL, answers.TopN, answers.DefaultDays, answers.AutoTLS,
	)
	fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1).Render(summary))

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save Configuration?").
				Affirmative("Yes, save").
				Negative("No, exit").
				Value(&confirm),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirm {
		return errors.New("setup cancelled by user")
	}

	data, err := Render(answers)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(err, "failed to save config file")
	}

	fmt.Println(lipgloss.NewStyle().Foreground(special).Render(fmt.Sprintf("\n✓ Configuration saved to %s\nRun: coindash serve --config %s", output, output)))
	return nil
}

// Render converts wizard answers into a validated yaml config file.
func Render(a Answers) ([]byte, error) {
	topN, err := strconv.Atoi(strings.TrimSpace(a.TopN))
	if err != nil {
		return nil, errors.Wrap(err, "incorrect top n")
	}
	days, err := domain.ParseDays(a.DefaultDays, domain.DefaultDays)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.Addr = strings.TrimSpace(a.Addr)
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(a.APIBaseURL), "/")
	cfg.TopN = topN
	cfg.DefaultDays = days
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	cfg.AutoTLS = a.AutoTLS
	if a.AutoTLS {
		cfg.Domains = splitList(a.Domains)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(cfg.ToTmp())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate yaml")
	}
	return data, nil
}

func printStep(step string) {
	fmt.Print("\033[H\033[2J") // clear screen
	fmt.Println(headerStyle.Render("COINDASH CONFIG WIZARD"))
	fmt.Println(stepStyle.Render(step))
}

func validateAddr(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("address cannot be empty")
	}
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return errors.New("must be host:port (e.g. :8080)")
	}
	port, err := strconv.Atoi(s[idx+1:])
	if err != nil || port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func validateBaseURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("must be an http(s) URL")
	}
	return nil
}

func validateTopN(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("must be a whole number")
	}
	if n < 1 || n > config.MaxTopN {
		return errors.Errorf("must be between 1 and %d", config.MaxTopN)
	}
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
