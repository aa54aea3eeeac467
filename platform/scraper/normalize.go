package scraper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// rawItem mirrors the JSON-lines schema emitted by the scraper tool for
// both video and channel-ish records (one object per line, per spec §6).
// Field names follow the conventional yt-dlp --dump-json vocabulary.
type rawItem struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Channel              string `json:"channel"`
	ChannelID            string `json:"channel_id"`
	Uploader             string `json:"uploader"`
	UploaderID           string `json:"uploader_id"`
	UploaderURL          string `json:"uploader_url"`
	Description          string `json:"description"`
	ViewCount            *int64 `json:"view_count"`
	ChannelFollowerCount int64  `json:"channel_follower_count"`
	ChannelViewCount     int64  `json:"channel_view_count"`
	UploadDate           string `json:"upload_date"` // YYYYMMDD
	Duration             *int64 `json:"duration"`    // seconds, yt-dlp integer form
	Thumbnail            string `json:"thumbnail"`
	WebpageURL           string `json:"webpage_url"`
	Type                 string `json:"_type"` // "video", "url", "playlist", ...
	EstimatedTotal       int64  `json:"playlist_count"`
}

// truncateDescription caps a description at 200 chars, the bound spec §3
// requires on SearchItem.Description.
func truncateDescription(s string) string {
	const max = 200
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// uploadDateToISO8601 converts a YYYYMMDD date (no timezone, treated as UTC
// midnight per spec §4.2) to ISO-8601. Returns "" if the input isn't a
// parseable 8-digit date.
func uploadDateToISO8601(yyyymmdd string) string {
	if len(yyyymmdd) != 8 {
		return ""
	}
	t, err := time.Parse("20060102", yyyymmdd)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// iso8601ToUploadDate is the inverse conversion, used only by tests to
// assert the round-trip invariant in spec §8.
func iso8601ToUploadDate(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", err
	}
	return t.UTC().Format("20060102"), nil
}

// channelURLFromItem builds a channel URL from the uploader handle when
// available, else from the channel id (spec §4.2.1).
func channelURLFromItem(r rawItem) string {
	handle := normalizeHandle(r.UploaderID)
	if handle != "" {
		return "https://www.youtube.com/" + handle
	}
	if r.UploaderURL != "" {
		return r.UploaderURL
	}
	if r.ChannelID != "" {
		return "https://www.youtube.com/channel/" + r.ChannelID
	}
	return ""
}

// normalizeHandle makes the uploader_id the scraper may emit carry a
// leading "@" (keeping one that is already there), returning "@handle", or
// "" if the value is empty or a raw "UC..." channel id.
func normalizeHandle(uploaderID string) string {
	u := strings.TrimSpace(uploaderID)
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "@") {
		return u
	}
	if strings.HasPrefix(u, "UC") {
		return ""
	}
	return "@" + u
}

// toSearchItem normalizes one raw scraper record into a SearchItem. kind is
// determined by the caller from the search type requested (spec's "item
// kind matches its id shape" invariant): a bare video listing yields video
// items, a channel listing yields channel items.
func toSearchItem(r rawItem, kind ItemKind) SearchItem {
	item := SearchItem{
		Kind:          kind,
		ID:            r.ID,
		Title:         r.Title,
		ChannelID:     r.ChannelID,
		ChannelTitle:  firstNonEmpty(r.Channel, r.Uploader),
		ChannelHandle: normalizeHandle(r.UploaderID),
		ChannelURL:    channelURLFromItem(r),
		Description:   truncateDescription(r.Description),
		PublishedAt:   uploadDateToISO8601(r.UploadDate),
		ThumbnailURL:  r.Thumbnail,
	}
	if kind == KindVideo && r.ViewCount != nil {
		item.ViewCount = r.ViewCount
	}
	return item
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseJSONLines parses a subprocess stdout body into a slice of rawItem,
// dropping lines that fail to parse (spec §4.2: "on JSON parse failure of
// an individual line, drops the line and continues").
func parseJSONLines(body []byte) []rawItem {
	lines := strings.Split(string(body), "\n")
	out := make([]rawItem, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var r rawItem
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			continue
		}
		out = append(out, r)
	}
	return out
}

// toVideoInfo normalizes the first raw record of a get_video_info call.
func toVideoInfo(r rawItem) VideoInfo {
	var duration int64
	if r.Duration != nil {
		duration = *r.Duration
	}
	var views int64
	if r.ViewCount != nil {
		views = *r.ViewCount
	}
	return VideoInfo{
		ID:                   r.ID,
		Title:                r.Title,
		DurationSeconds:      duration,
		ViewCount:            views,
		Uploader:             firstNonEmpty(r.Uploader, r.Channel),
		UploaderID:           r.UploaderID,
		UploaderURL:          r.UploaderURL,
		ChannelFollowerCount: r.ChannelFollowerCount,
		UploadDate:           r.UploadDate,
		ChannelViewCount:     r.ChannelViewCount,
		Description:          r.Description,
	}
}

// parseISO8601Duration accepts an ISO-8601 duration (PT#H#M#S) or a bare
// integer-seconds string and returns total seconds. Only the tests call
// it; the content-type analyzer parses durations with its own
// parseDuration.
func parseISO8601Duration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if !strings.HasPrefix(s, "PT") {
		return 0, fmt.Errorf("unrecognized duration %q", s)
	}
	rest := s[2:]
	var hours, minutes, seconds int64
	var numBuf strings.Builder
	for _, r := range rest {
		switch {
		case r >= '0' && r <= '9':
			numBuf.WriteRune(r)
		case r == 'H':
			hours, _ = strconv.ParseInt(numBuf.String(), 10, 64)
			numBuf.Reset()
		case r == 'M':
			minutes, _ = strconv.ParseInt(numBuf.String(), 10, 64)
			numBuf.Reset()
		case r == 'S':
			seconds, _ = strconv.ParseInt(numBuf.String(), 10, 64)
			numBuf.Reset()
		default:
			return 0, fmt.Errorf("unrecognized duration %q", s)
		}
	}
	return hours*3600 + minutes*60 + seconds, nil
}
