package model

// RecommendationEntry is a single adaptive content block placed into the
// layout's main section
type RecommendationEntry struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
	Theme    string `json:"theme,omitempty"`
	Layout   string `json:"layout,omitempty"`
}

// LayoutHeader is the fixed page header
type LayoutHeader struct {
	Title    string `json:"title"`
	UserMenu string `json:"user_menu"`
}

// LayoutSidebar holds the navigation menu plus widgets contributed by rules
type LayoutSidebar struct {
	Menu    []string `json:"menu"`
	Widgets []string `json:"widgets"`
}

// LayoutFooter is the fixed page footer
type LayoutFooter struct {
	Copyright string   `json:"copyright"`
	Links     []string `json:"links"`
}

// LayoutDescriptor is the structured UI plan returned to the presentation
// boundary. Rebuilt fresh on every adaptation request, never cached.
type LayoutDescriptor struct {
	Header      LayoutHeader          `json:"header"`
	MainContent []RecommendationEntry `json:"main_content"`
	Sidebar     LayoutSidebar         `json:"sidebar"`
	Footer      LayoutFooter          `json:"footer"`
	Theme       string                `json:"theme"`
	Layout      string                `json:"layout"`
}
