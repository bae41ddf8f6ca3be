package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"argscan/internal/diagfmt"
	"argscan/internal/flagspec"
	"argscan/internal/scan"
)

func parse(t *testing.T, schema flagspec.Schema, argv []string, opts scan.Options) *scan.Result {
	t.Helper()
	norm, err := flagspec.Normalize(schema)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return scan.Parse(norm, argv, opts)
}

func sampleResult(t *testing.T) *scan.Result {
	t.Helper()
	schema := flagspec.Schema{
		"name":  {Type: flagspec.TypeString, Flags: []string{"--name"}},
		"items": {Type: flagspec.TypeArray, Flags: []string{"--items"}},
		"n":     {Type: flagspec.TypeNumber, Flags: []string{"--n"}, Required: true},
	}
	argv := []string{"--items", "a", "b", "--bogus", "tail"}
	return parse(t, schema, argv, scan.Options{})
}

func TestBuildResultJSONProjection(t *testing.T) {
	res := sampleResult(t)
	out := diagfmt.BuildResultJSON(res, diagfmt.JSONOpts{})

	if out.OK {
		t.Error("Expected ok=false carried through")
	}
	if !reflect.DeepEqual(out.Values["items"], []string{"a", "b"}) {
		t.Errorf("Expected items projected, got %v", out.Values["items"])
	}
	// отсутствующее значение остаётся nil и сериализуется как null
	if v, ok := out.Values["name"]; !ok || v != nil {
		t.Errorf("Expected explicit null entry for absent name, got %v ok=%v", v, ok)
	}
	if out.Rest == nil || out.Unknown == nil {
		t.Error("Expected rest/unknown to be arrays, never nil")
	}

	if len(out.Issues) != 2 {
		t.Fatalf("Expected 2 issues (unknown + required), got %d", len(out.Issues))
	}
	unknown := out.Issues[0]
	if unknown.Code != "UNKNOWN_FLAG" || unknown.Severity != "error" {
		t.Errorf("Unexpected first issue: %+v", unknown)
	}
	if unknown.Index == nil || *unknown.Index != 3 {
		t.Errorf("Expected index pointer 3, got %v", unknown.Index)
	}
	required := out.Issues[1]
	if required.Code != "REQUIRED" {
		t.Errorf("Unexpected second issue: %+v", required)
	}
	// после-скановые issues не указывают на позицию
	if required.Index != nil {
		t.Errorf("Expected no index on required issue, got %v", *required.Index)
	}
}

func TestBuildResultJSONDefensiveCopies(t *testing.T) {
	res := sampleResult(t)
	out := diagfmt.BuildResultJSON(res, diagfmt.JSONOpts{})

	out.Values["items"].([]string)[0] = "mutated"
	out.Rest[0] = "mutated"
	out.Present["name"] = true

	if res.Values["items"].([]string)[0] != "a" {
		t.Error("Expected result array isolated from projection")
	}
	if res.Rest[0] != "tail" {
		t.Error("Expected result rest isolated from projection")
	}
	if res.Present["name"] {
		t.Error("Expected result present isolated from projection")
	}
}

func TestBuildResultJSONTruncation(t *testing.T) {
	res := sampleResult(t)
	out := diagfmt.BuildResultJSON(res, diagfmt.JSONOpts{MaxIssues: 1})

	if len(out.Issues) != 1 {
		t.Errorf("Expected issues truncated to 1, got %d", len(out.Issues))
	}
	// усечение касается только вывода
	if len(res.Issues) != 2 {
		t.Errorf("Expected result itself untouched, got %d issues", len(res.Issues))
	}
}

func TestWriteResultJSONRoundTrip(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	if err := diagfmt.WriteResultJSON(&buf, res, diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("WriteResultJSON failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	values := decoded["values"].(map[string]any)
	if v, ok := values["name"]; !ok || v != nil {
		t.Errorf("Expected null for absent name in wire form, got %v", v)
	}
	if decoded["ok"] != false {
		t.Errorf("Expected ok=false in wire form, got %v", decoded["ok"])
	}
}

func TestWriteResultMsgpackMatchesProjection(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	if err := diagfmt.WriteResultMsgpack(&buf, res, diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("WriteResultMsgpack failed: %v", err)
	}

	var decoded diagfmt.ResultJSON
	if err := msgpack.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.OK {
		t.Error("Expected ok=false through msgpack")
	}
	if len(decoded.Issues) != 2 {
		t.Errorf("Expected 2 issues through msgpack, got %d", len(decoded.Issues))
	}
}

func TestPrettyResult(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	opts := diagfmt.PrettyOpts{ShowValues: true}
	if err := diagfmt.PrettyResult(&buf, res, opts); err != nil {
		t.Fatalf("PrettyResult failed: %v", err)
	}
	out := buf.String()

	for _, expected := range []string{
		"error UNKNOWN_FLAG:",
		"(arg 3)",
		"error REQUIRED:",
		"name = <absent>",
		"items = [a b]",
		"rest: tail",
		"failed",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
}

func TestPrettyResultTruncationNotice(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	if err := diagfmt.PrettyResult(&buf, res, diagfmt.PrettyOpts{MaxIssues: 1}); err != nil {
		t.Fatalf("PrettyResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "... and 1 more issues") {
		t.Errorf("Expected truncation notice, got:\n%s", buf.String())
	}
}

func TestPrettyResultOKVerdict(t *testing.T) {
	schema := flagspec.Schema{
		"v": {Type: flagspec.TypeBool, Flags: []string{"--v"}},
	}
	res := parse(t, schema, []string{"--v"}, scan.Options{})

	var buf bytes.Buffer
	if err := diagfmt.PrettyResult(&buf, res, diagfmt.PrettyOpts{}); err != nil {
		t.Fatalf("PrettyResult failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "ok" {
		t.Errorf("Expected bare ok verdict, got %q", buf.String())
	}
}
