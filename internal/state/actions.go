package state

// ActionType enumerates every intent the store understands.
type ActionType string

const (
	PagesSetQueryState      ActionType = "PAGES_SET_QUERY_STATE"
	SettingsSetNSFWMode     ActionType = "SETTINGS_SET_NSFW_MODE"
	SettingsSetHideNSFWMode ActionType = "SETTINGS_SET_HIDE_NSFW_MODE"
	SettingsSetUITheme      ActionType = "SETTINGS_SET_UI_THEME"
	SettingsSetHideUITheme  ActionType = "SETTINGS_SET_HIDE_UI_THEME"
)

// Action is a dispatched intent. The payload shape depends on Type.
type Action struct {
	Type    ActionType `json:"type"`
	Payload any        `json:"payload,omitempty"`
}

// SetQueryState builds a PAGES_SET_QUERY_STATE action for pageKey.
func SetQueryState(pageKey string, patch QueryState) Action {
	return Action{
		Type:    PagesSetQueryState,
		Payload: QueryStatePayload{PageKey: pageKey, QueryState: patch},
	}
}

func SetNSFWMode(on bool) Action {
	return Action{Type: SettingsSetNSFWMode, Payload: on}
}

func SetHideNSFWMode(hide bool) Action {
	return Action{Type: SettingsSetHideNSFWMode, Payload: hide}
}

func SetUITheme(theme string) Action {
	return Action{Type: SettingsSetUITheme, Payload: theme}
}

func SetHideUITheme(hide bool) Action {
	return Action{Type: SettingsSetHideUITheme, Payload: hide}
}
