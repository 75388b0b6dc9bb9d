package exclusion

import (
	"log"

	"github.com/umputun/exclude-pages/pkg/hooks"
)

// panel registration
const (
	PanelID    = "exclude-pages"
	PanelTitle = "Exclude Pages"
)

// Register wires exclusion into the site hooks. The listing filter is added on init,
// the edit-screen panel and the save action on admin init.
func Register(reg *hooks.Registry, svc *Service) {
	toggle := NewToggle(svc)

	reg.OnInit(func(r *hooks.Registry) {
		r.AddPagesFilter(svc.FilterPages)
		log.Printf("[DEBUG] exclusion filter registered")
	})

	reg.OnAdminInit(func(r *hooks.Registry) {
		r.AddPanel(hooks.Panel{
			ID:        PanelID,
			Title:     PanelTitle,
			Screen:    hooks.ScreenPage,
			Placement: hooks.PlacementSide,
			Priority:  hooks.PriorityLow,
			Render:    toggle.Panel,
		})
		r.AddSaveAction(toggle.Save)
		log.Printf("[DEBUG] exclusion panel and save action registered")
	})
}
