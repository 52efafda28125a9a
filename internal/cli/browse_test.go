package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	cliadapter "github.com/example/storefinder/internal/adapters/cli"
	"github.com/example/storefinder/internal/app"
	"github.com/example/storefinder/internal/core/filter"
	"github.com/example/storefinder/internal/core/geo"
	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/core/selection"
)

type staticSource []record.Record

func (s staticSource) Fetch(ctx context.Context) ([]record.Record, error) {
	return append([]record.Record(nil), s...), nil
}

func (s staticSource) Describe() string { return "static" }

func TestParseBrowseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    browseCommand
		wantErr bool
	}{
		{"", browseCommand{action: browseNone}, false},
		{"   ", browseCommand{action: browseNone}, false},
		{"q y路", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetQuery, Value: "y路"}}, false},
		{"q", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetQuery}}, false},
		{"city 台北市", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetCity, Value: "台北市"}}, false},
		{"CITY  高雄市 ", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetCity, Value: "高雄市"}}, false},
		{"district 大安區", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventSetDistrict, Value: "大安區"}}, false},
		{"reset", browseCommand{action: browseEvent, event: selection.Event{Kind: selection.EventReset}}, false},
		{"show", browseCommand{action: browseShow}, false},
		{"help", browseCommand{action: browseHelpAction}, false},
		{"exit", browseCommand{action: browseQuit}, false},
		{"delete everything", browseCommand{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseBrowseCommand(tt.line)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBrowseCommand(%q) error = %v, wantErr %v", tt.line, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseBrowseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRunBrowse(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()

	svc := app.NewDirectoryService(staticSource{
		{Name: "A店", Address: "x路1號", Tel: "02-1", City: "台北市", District: "大安區"},
		{Name: "B店", Address: "y路2號", Tel: "02-2", City: "台北市", District: "信義區"},
		{Name: "C店", Address: "z路3號", Tel: "07-3", City: "高雄市"},
	}, geo.DefaultCityOrder(), geo.Collation{}, nil, nil)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var out bytes.Buffer
	renderer := cliadapter.NewDirectoryAdapter(svc, &out)
	ctrl := svc.Controller(renderer)

	in := strings.NewReader("city 台北市\nq y路\nbogus\ndistrict 信義區\nquit\nq ignored\n")
	if err := runBrowse(ctx, in, &out, ctrl, renderer); err != nil {
		t.Fatalf("runBrowse failed: %v", err)
	}

	want := filter.State{Query: "y路", City: "台北市", District: "信義區"}
	if got := ctrl.State(); got != want {
		t.Errorf("final state = %+v, want %+v", got, want)
	}

	output := out.String()
	if !strings.Contains(output, `unknown command "bogus"`) {
		t.Errorf("expected unknown command message, got:\n%s", output)
	}
	if !strings.Contains(output, "區域: 所有區域 | [信義區] | 大安區") {
		t.Errorf("expected district selector with selection, got:\n%s", output)
	}
}

func TestRunBrowse_EOF(t *testing.T) {
	ctx := context.Background()
	svc := app.NewDirectoryService(staticSource{}, geo.DefaultCityOrder(), geo.Collation{}, nil, nil)

	var out bytes.Buffer
	renderer := cliadapter.NewDirectoryAdapter(svc, &out)

	if err := runBrowse(ctx, strings.NewReader("reset\n"), &out, svc.Controller(renderer), renderer); err != nil {
		t.Fatalf("runBrowse failed: %v", err)
	}
	if !strings.Contains(out.String(), "沒有符合條件的門市。") {
		t.Errorf("expected empty result message, got:\n%s", out.String())
	}
}
