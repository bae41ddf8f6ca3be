package diagfmt

import (
	"encoding/json"
	"io"

	"argscan/internal/diag"
	"argscan/internal/scan"
)

// IssueJSON представляет одну issue в JSON формате
type IssueJSON struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Flag     string `json:"flag,omitempty"`
	Key      string `json:"key,omitempty"`
	Value    string `json:"value,omitempty"`
	Index    *int   `json:"index,omitempty"`
}

// ResultJSON представляет корневую структуру JSON вывода. Absent values
// serialise as null; rest/unknown/issues are always arrays, never null.
type ResultJSON struct {
	Values  map[string]any  `json:"values"`
	Present map[string]bool `json:"present"`
	Rest    []string        `json:"rest"`
	Unknown []string        `json:"unknown"`
	Issues  []IssueJSON     `json:"issues"`
	OK      bool            `json:"ok"`
}

func makeIssue(is diag.Issue) IssueJSON {
	out := IssueJSON{
		Code:     is.Code.ID(),
		Severity: is.Severity.String(),
		Message:  is.Message,
		Flag:     is.Flag,
		Key:      is.Key,
		Value:    is.Value,
	}
	if is.Index != diag.NoIndex {
		index := is.Index
		out.Index = &index
	}
	return out
}

// BuildResultJSON формирует сериализуемую проекцию без записи в поток.
// Every slice and map is a defensive copy: mutating the projection can
// never reach back into the Result.
func BuildResultJSON(res *scan.Result, opts JSONOpts) ResultJSON {
	values := make(map[string]any, len(res.Values))
	for key, v := range res.Values {
		if arr, ok := v.([]string); ok {
			cp := make([]string, len(arr))
			copy(cp, arr)
			values[key] = cp
			continue
		}
		values[key] = v
	}
	present := make(map[string]bool, len(res.Present))
	for key, p := range res.Present {
		present[key] = p
	}

	rest := make([]string, len(res.Rest))
	copy(rest, res.Rest)
	unknown := make([]string, len(res.Unknown))
	copy(unknown, res.Unknown)

	maxIssues := len(res.Issues)
	if opts.MaxIssues > 0 && opts.MaxIssues < maxIssues {
		maxIssues = opts.MaxIssues
	}
	issues := make([]IssueJSON, 0, maxIssues)
	for i := 0; i < maxIssues; i++ {
		issues = append(issues, makeIssue(res.Issues[i]))
	}

	return ResultJSON{
		Values:  values,
		Present: present,
		Rest:    rest,
		Unknown: unknown,
		Issues:  issues,
		OK:      res.OK,
	}
}

// WriteResultJSON сериализует проекцию результата в JSON.
func WriteResultJSON(w io.Writer, res *scan.Result, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildResultJSON(res, opts))
}
