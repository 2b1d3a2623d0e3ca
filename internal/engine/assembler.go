package engine

import "adaptiveui/internal/model"

// Layout defaults. A matched rule's theme/layout overrides these, highest
// priority first.
const (
	DefaultTheme  = "light"
	DefaultLayout = "standard"
)

var (
	headerTitle    = "Adaptive UI Platform"
	headerUserMenu = "Profile | Settings | Logout"
	sidebarMenu    = []string{"Dashboard", "Rules", "Components", "Analytics"}
	footerText     = "© 2024 Adaptive UI Platform"
	footerLinks    = []string{"About", "Privacy", "Terms"}
)

// AssembleLayout merges matched rule actions (already in priority order) with
// the generated recommendation into a complete layout descriptor. The result
// is freshly allocated on every call; identical inputs produce identical
// descriptors.
func AssembleLayout(matched []model.MatchResult, rec model.RecommendationEntry) model.LayoutDescriptor {
	main := make([]model.RecommendationEntry, 0, 1+len(matched))
	main = append(main, rec)

	theme := DefaultTheme
	layout := DefaultLayout
	themeSet, layoutSet := false, false

	for _, m := range matched {
		for _, comp := range m.Actions.ShowComponents {
			main = append(main, model.RecommendationEntry{
				Type:     "component",
				Content:  comp,
				Priority: m.Priority,
			})
		}
		// Highest-priority rule wins theme and layout; matched is ordered.
		if !themeSet && m.Actions.Theme != "" {
			theme = m.Actions.Theme
			themeSet = true
		}
		if !layoutSet && m.Actions.Layout != "" {
			layout = m.Actions.Layout
			layoutSet = true
		}
	}

	return model.LayoutDescriptor{
		Header: model.LayoutHeader{
			Title:    headerTitle,
			UserMenu: headerUserMenu,
		},
		MainContent: main,
		Sidebar: model.LayoutSidebar{
			Menu: append([]string(nil), sidebarMenu...),
			// Reserved for rule-contributed widgets.
			Widgets: []string{},
		},
		Footer: model.LayoutFooter{
			Copyright: footerText,
			Links:     append([]string(nil), footerLinks...),
		},
		Theme:  theme,
		Layout: layout,
	}
}
