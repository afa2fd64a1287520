// Package metrics is the observability channel for batch runs. Every
// attempted tile produces one TileInfo record, serialized as a JSON line to
// stdout or to rotating log files.
package metrics

import (
	"bytes"
	"encoding/json"
	"time"
)

// TileInfo describes the outcome of one per-tile operation. Error is empty
// for tiles that were processed successfully.
type TileInfo struct {
	ReqTime    string        `json:"req_time"`
	Operation  string        `json:"operation"`
	TilePath   string        `json:"tile_path"`
	OutputPath string        `json:"output_path"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
}

// TileCollector accumulates one tile's record and sends it to the
// configured logger.
type TileCollector struct {
	Info   *TileInfo
	logger Logger
}

func NewTileCollector(logger Logger) *TileCollector {
	return &TileCollector{
		Info:   &TileInfo{ReqTime: time.Now().Format(time.RFC3339)},
		logger: logger,
	}
}

func (c *TileCollector) Log() {
	if c.logger != nil {
		c.logger.Log(c.Info)
	}
}

func (i *TileInfo) ToJSON() (string, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(i)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
