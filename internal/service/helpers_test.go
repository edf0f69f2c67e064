package service_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/codejam_client/internal/service"
	"github.com/mishasvintus/codejam_client/internal/service/mocks"
	"github.com/mishasvintus/codejam_client/internal/store"
	"github.com/mishasvintus/codejam_client/internal/transport"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// pathIs matches a transport.Request by method and path.
type pathIs struct {
	method string
	path   string
}

func (m pathIs) Matches(x any) bool {
	r, ok := x.(transport.Request)
	return ok && r.Method == m.method && r.Path == m.path
}

func (m pathIs) String() string {
	return fmt.Sprintf("%s %s", m.method, m.path)
}

func getPath(path string) gomock.Matcher {
	return pathIs{method: http.MethodGet, path: path}
}

func bodyJSON(t *testing.T, r transport.Request) string {
	t.Helper()
	if r.Body == nil {
		return ""
	}
	b, err := json.Marshal(r.Body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return string(b)
}

func newClient(t *testing.T) (*service.Client, *mocks.MockSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	return service.NewClient(sender, store.NewStores(), nil), sender
}
