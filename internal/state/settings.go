package state

// SettingsState holds user preference flags. Fields stay absent until set.
type SettingsState struct {
	NSFWMode     Optional[bool]   `json:"nsfwMode,omitzero"`
	NSFWModeHide Optional[bool]   `json:"nsfwModeHide,omitzero"`
	UITheme      Optional[string] `json:"uiTheme,omitzero"`
	UIThemeHide  Optional[bool]   `json:"uiThemeHide,omitzero"`
}

// ReduceSettings replaces the single field addressed by the action type.
// A payload of the wrong type leaves the state unchanged.
func ReduceSettings(s SettingsState, a Action) SettingsState {
	switch a.Type {
	case SettingsSetNSFWMode:
		if v, ok := a.Payload.(bool); ok {
			s.NSFWMode = Some(v)
		}
	case SettingsSetHideNSFWMode:
		if v, ok := a.Payload.(bool); ok {
			s.NSFWModeHide = Some(v)
		}
	case SettingsSetUITheme:
		if v, ok := a.Payload.(string); ok {
			s.UITheme = Some(v)
		}
	case SettingsSetHideUITheme:
		if v, ok := a.Payload.(bool); ok {
			s.UIThemeHide = Some(v)
		}
	}
	return s
}
