package transcription

// Segment is a normalized sub-span of a transcript. Start and End are nil
// when the backend reported no timing; absence is never coerced to zero.
type Segment struct {
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
	// Start is the segment start time in seconds, if known.
	Start *float64 `json:"start,omitempty"`
	// End is the segment end time in seconds, if known.
	End *float64 `json:"end,omitempty"`
}

// Transcript is the canonical result returned to API clients.
type Transcript struct {
	// Text is the cleaned full transcript.
	Text string `json:"text"`
	// RecordingTimestamp is echoed verbatim from the request; it is not
	// derived from the audio.
	RecordingTimestamp *string `json:"recording_timestamp"`
	// Segments holds time-aligned segments when the backend provided them.
	Segments []Segment `json:"segments,omitempty"`
}
