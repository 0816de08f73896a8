package handlers

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"podverse-web/internal/state"
)

func TestLogDispatchRecordsSessionAndPage(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	r := state.NewRegistry()
	r.OnDispatch = LogDispatch
	r.Get("0123456789abcdef").Dispatch(state.SetQueryState("episode", state.QueryState{QueryPage: state.Some(2)}))

	out := buf.String()
	if !strings.Contains(out, "[STATE] action=pages_set_query_state") || !strings.Contains(out, "session=01234567 page=episode") {
		t.Fatalf("unexpected log %q", out)
	}
}
