package state

import (
	"encoding/json"
	"strings"

	"podverse-web/internal/domain"
)

// ListItem is any record shown in a page list (clip, episode, podcast).
type ListItem = any

// QueryState is the filter and pagination state of one listing page.
// Every field is independently present or absent.
type QueryState struct {
	CategoryID       Optional[string]     `json:"categoryId,omitzero"`
	QueryFrom        Optional[string]     `json:"queryFrom,omitzero"`
	QueryPage        Optional[int]        `json:"queryPage,omitzero"`
	QuerySort        Optional[string]     `json:"querySort,omitzero"`
	QueryType        Optional[string]     `json:"queryType,omitzero"`
	Selected         Optional[string]     `json:"selected,omitzero"`
	ListItems        Optional[[]ListItem] `json:"listItems,omitzero"`
	IsLoadingInitial Optional[bool]       `json:"isLoadingInitial,omitzero"`
	IsLoadingMore    Optional[bool]       `json:"isLoadingMore,omitzero"`
	EndReached       Optional[bool]       `json:"endReached,omitzero"`
}

// Merge returns e with every present field of patch applied. Absent fields
// in patch leave e untouched; present zero values overwrite.
func (e QueryState) Merge(patch QueryState) QueryState {
	out := e
	apply(&out.CategoryID, patch.CategoryID)
	apply(&out.QueryFrom, patch.QueryFrom)
	apply(&out.QueryPage, patch.QueryPage)
	apply(&out.QuerySort, patch.QuerySort)
	apply(&out.QueryType, patch.QueryType)
	apply(&out.Selected, patch.Selected)
	apply(&out.ListItems, patch.ListItems)
	apply(&out.IsLoadingInitial, patch.IsLoadingInitial)
	apply(&out.IsLoadingMore, patch.IsLoadingMore)
	apply(&out.EndReached, patch.EndReached)
	return out
}

// QueryStatePayload is the payload of PAGES_SET_QUERY_STATE.
type QueryStatePayload struct {
	PageKey string `json:"pageKey"`
	QueryState
}

// PagesState maps a page key to its query state.
type PagesState map[string]QueryState

func (p PagesState) clone() PagesState {
	out := make(PagesState, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ReducePages applies a query-state action. Missing page keys and foreign
// action types return the input state unchanged.
func ReducePages(s PagesState, a Action) PagesState {
	if a.Type != PagesSetQueryState {
		return s
	}
	var payload QueryStatePayload
	switch p := a.Payload.(type) {
	case QueryStatePayload:
		payload = p
	case *QueryStatePayload:
		if p == nil {
			return s
		}
		payload = *p
	default:
		return s
	}
	if payload.PageKey == "" {
		return s
	}

	out := s.clone()
	out[payload.PageKey] = s[payload.PageKey].Merge(payload.QueryState)
	return out
}

// QueryStatePayloadFromJSON decodes a JSON patch respecting key presence:
// keys holding false, 0, "" or [] are applied, missing keys and null are not.
func QueryStatePayloadFromJSON(pageKey string, raw []byte) (QueryStatePayload, error) {
	pageKey = strings.TrimSpace(pageKey)
	var patch QueryState
	if err := json.Unmarshal(raw, &patch); err != nil {
		return QueryStatePayload{}, domain.ValidationError{Field: "payload", Msg: "invalid query state", Err: err}
	}
	return QueryStatePayload{PageKey: pageKey, QueryState: patch}, nil
}
