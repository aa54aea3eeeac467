// Package contenttype classifies a channel's content type from its
// metadata alone — no network calls, no model inference (spec §4.5, C5).
package contenttype

// ContentType is the classification a Verdict resolves to.
type ContentType string

const (
	TypeFacelessVoiceover ContentType = "faceless_voiceover"
	TypeCompilation       ContentType = "compilation"
	TypeScreenRecording   ContentType = "screen_recording"
	TypeTutorial          ContentType = "tutorial"
	TypePossiblyFaceless  ContentType = "possibly_faceless"
	TypeUnknown           ContentType = "unknown"
)

// Video is the minimal per-video input the analyzer needs.
type Video struct {
	Title       string
	Description string
	Duration    string // ISO-8601 "PT#H#M#S" or a bare integer-seconds string; "" if unknown
}

// Channel is the full input to Analyze (spec §4.5).
type Channel struct {
	Title       string
	Description string
	Videos      []Video // up to 10 recent videos
}

// Verdict is the analyzer's output (spec §3 ContentTypeVerdict).
type Verdict struct {
	FacelessScore  int         `json:"faceless_score"`
	ContentType    ContentType `json:"content_type"`
	CopyIndicators []string    `json:"copy_indicators"`
}
