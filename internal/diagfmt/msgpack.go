package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"argscan/internal/scan"
)

// WriteResultMsgpack encodes the same serialization-safe projection as the
// JSON writer into a compact msgpack frame, for machine consumers that
// exchange many results.
func WriteResultMsgpack(w io.Writer, res *scan.Result, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(BuildResultJSON(res, opts))
}
