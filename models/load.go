package models

import "encoding/json"

// Settings toggles optional panes of the embedded view. Pointers
// distinguish "absent" from "false".
type Settings struct {
	FilterPaneEnabled     *bool `json:"filterPaneEnabled,omitempty"`
	NavContentPaneEnabled *bool `json:"navContentPaneEnabled,omitempty"`
}

// Load is the configuration record an embedding application supplies
// when loading a report. It is plain data, never behavior-bearing;
// validation.ValidateLoad checks the serialized shape. Filter holds the
// already-serialized JSON of a Filter value, if any.
type Load struct {
	AccessToken string          `json:"accessToken"`
	ID          string          `json:"id"`
	Settings    *Settings       `json:"settings,omitempty"`
	PageName    string          `json:"pageName,omitempty"`
	Filter      json.RawMessage `json:"filter,omitempty"`
}

// Page identifies a single report page.
type Page struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}
