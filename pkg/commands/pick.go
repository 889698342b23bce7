package commands

import (
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/moodbubbles/pkg/mood"
)

// pickFruit lets the user choose a mood from the catalog.
func pickFruit() (string, error) {
	moods := mood.Catalog()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Icon }} {{ .Title | cyan }}",
		Inactive: "   {{ .Icon }} {{ .Title | cyan }}",
		Selected: "➜  {{ .Icon }} {{ .Title | bold }}",
		Details: `
--------- {{ .ID }} ----------
{{ .MoodDescription }}
`,
	}

	searcher := func(input string, index int) bool {
		m := moods[index]
		name := strings.ToLower(m.ID + m.Title)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(strings.Replace(name, " ", "", -1), input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "How was the day",
		Items:     moods,
		Templates: templates,
		Size:      len(moods),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return moods[i].ID, nil
}
