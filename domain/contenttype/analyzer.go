package contenttype

import (
	"strconv"
	"strings"
)

// facelessKeywords is the fixed ~25-string vocabulary scanned for across
// channel and video text (spec §4.5).
var facelessKeywords = []string{
	"faceless", "no commentary", "voice over", "voiceover", "tts", "text to speech",
	"narrated", "narration", "ai voice",
	"compilation", "top 10", "top 5", "best of", "countdown", "recap",
	"screen recording", "screen recorder", "gameplay", "let's play", "walkthrough",
	"tutorial", "how to",
	"asmr", "meditation", "stock footage",
}

var compilationWords = []string{"compilation", "top 10", "top 5", "best of", "countdown", "recap"}
var screenRecordingWords = []string{"screen recording", "screen recorder", "gameplay", "let's play", "walkthrough"}
var tutorialWords = []string{"tutorial", "how to"}
var voiceoverWords = []string{
	"faceless", "no commentary", "voice over", "voiceover", "tts", "text to speech",
	"narrated", "narration", "ai voice",
}

// Analyze implements the weighted five-signal classifier (spec §4.5).
func Analyze(ch Channel) Verdict {
	titleScore, titleHits := keywordScore(ch.Title)
	descScore, descHits := keywordScore(ch.Description)
	videoScore, videoHits := videoKeywordScore(ch.Videos)
	freqScore := uploadFrequencyScore(len(ch.Videos))
	durationScore := durationPatternScore(ch.Videos)

	total := 0.20*float64(titleScore) +
		0.25*float64(descScore) +
		0.35*float64(videoScore) +
		0.10*float64(freqScore) +
		0.10*float64(durationScore)

	allIndicators := dedupe(append(append(append([]string{}, titleHits...), descHits...), videoHits...))

	compilationHits := countMatches(allIndicators, compilationWords)
	screenRecordingHits := countMatches(allIndicators, screenRecordingWords)
	tutorialHits := countMatches(allIndicators, tutorialWords)
	voiceoverHits := countMatches(allIndicators, voiceoverWords)

	score := int(total + 0.5)

	contentType := classify(score, compilationHits, screenRecordingHits, tutorialHits, voiceoverHits)

	return Verdict{
		FacelessScore:  score,
		ContentType:    contentType,
		CopyIndicators: allIndicators,
	}
}

// classify implements the priority cascade (spec §4.5).
func classify(score, compilationHits, screenRecordingHits, tutorialHits, voiceoverHits int) ContentType {
	switch {
	case compilationHits >= 2:
		return TypeCompilation
	case (tutorialHits >= 1 && screenRecordingHits >= 1) || tutorialHits >= 1:
		return TypeTutorial
	case screenRecordingHits >= 1:
		return TypeScreenRecording
	case voiceoverHits >= 1:
		return TypeFacelessVoiceover
	case score >= 60:
		return TypeFacelessVoiceover
	case score >= 30 || compilationHits+screenRecordingHits+tutorialHits+voiceoverHits > 0:
		return TypePossiblyFaceless
	default:
		return TypeUnknown
	}
}

// keywordScore scans one piece of text for faceless keywords, returning
// min(matches*15, 100) and the matched keywords.
func keywordScore(text string) (int, []string) {
	lower := strings.ToLower(text)
	var hits []string
	for _, kw := range facelessKeywords {
		if strings.Contains(lower, kw) {
			hits = append(hits, kw)
		}
	}
	score := len(hits) * 15
	if score > 100 {
		score = 100
	}
	return score, hits
}

// videoKeywordScore scores the fraction of the sample whose title or
// description carries at least one faceless keyword.
func videoKeywordScore(videos []Video) (int, []string) {
	if len(videos) == 0 {
		return 0, nil
	}
	var allHits []string
	matched := 0
	for _, v := range videos {
		_, titleHits := keywordScore(v.Title)
		_, descHits := keywordScore(v.Description)
		hits := append(titleHits, descHits...)
		if len(hits) > 0 {
			matched++
		}
		allHits = append(allHits, hits...)
	}
	fraction := float64(matched) / float64(len(videos))
	return int(fraction*100 + 0.5), allHits
}

// uploadFrequencyScore approximates uploads/week from the sample count,
// since the analyzer has no direct timestamp cadence input (spec §4.5:
// "using a sample-count/4 approximation").
func uploadFrequencyScore(sampleCount int) int {
	perWeek := float64(sampleCount) / 4.0
	switch {
	case perWeek > 7:
		return 80
	case perWeek >= 3:
		return 60
	case perWeek >= 1:
		return 30
	default:
		return 10
	}
}

// durationPatternScore scores the average video duration in minutes.
func durationPatternScore(videos []Video) int {
	var total float64
	var samples int
	for _, v := range videos {
		secs, err := parseDuration(v.Duration)
		if err != nil {
			continue
		}
		total += float64(secs)
		samples++
	}
	if samples == 0 {
		return 0
	}
	avgMinutes := total / float64(samples) / 60.0
	switch {
	case avgMinutes >= 5 && avgMinutes <= 20:
		return 70
	case avgMinutes >= 3 && avgMinutes <= 25:
		return 50
	default:
		return 20
	}
}

func countMatches(indicators []string, vocab []string) int {
	set := make(map[string]bool, len(vocab))
	for _, w := range vocab {
		set[w] = true
	}
	count := 0
	for _, ind := range indicators {
		if set[ind] {
			count++
		}
	}
	return count
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// parseDuration accepts an ISO-8601 duration (PT#H#M#S) or a bare
// integer-seconds string (spec §4.5).
func parseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyDuration
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if !strings.HasPrefix(s, "PT") {
		return 0, errBadDuration
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
			return 0, errBadDuration
		}
	}
	return hours*3600 + minutes*60 + seconds, nil
}

type durationError string

func (e durationError) Error() string { return string(e) }

const (
	errEmptyDuration = durationError("contenttype: empty duration")
	errBadDuration   = durationError("contenttype: unrecognized duration format")
)
