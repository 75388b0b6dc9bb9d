package exclusion

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
)

// FormField is the edit-screen checkbox name, value "1" means the page is excluded
const FormField = "exclude_this_page"

var panelTmpl = template.Must(template.New("exclude-panel").Parse(`<div id="excludepagediv">
	<p><label for="{{.Field}}" class="selectit">
		<input type="checkbox" name="{{.Field}}" id="{{.Field}}" value="1"{{if .Checked}} checked="checked"{{end}} />
		Hide this page from lists of pages</label>
	</p>
</div>`))

// Toggle is the admin side of exclusion: the edit-screen checkbox and the save handler
type Toggle struct {
	svc *Service
}

// NewToggle makes a toggle for the service
func NewToggle(svc *Service) *Toggle {
	return &Toggle{svc: svc}
}

// Panel renders the checkbox for the page, checked if the page is excluded
func (t *Toggle) Panel(ctx context.Context, pageID int64) (template.HTML, error) {
	checked, err := t.svc.IsExcluded(ctx, pageID)
	if err != nil {
		return "", fmt.Errorf("render exclusion panel for page %d: %w", pageID, err)
	}

	data := struct {
		Field   string
		Checked bool
	}{Field: FormField, Checked: checked}

	var buf bytes.Buffer
	if err := panelTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute exclusion panel template: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // rendered by html/template
}

// Save updates exclusion of the page from the submitted form. Missing field means the page is not excluded.
func (t *Toggle) Save(ctx context.Context, pageID int64, form url.Values) error {
	return t.svc.SetPageExcluded(ctx, pageID, ExcludeFlag(form))
}

// ExcludeFlag returns true only if the form has FormField set to "1"
func ExcludeFlag(form url.Values) bool {
	return form.Get(FormField) == "1"
}
