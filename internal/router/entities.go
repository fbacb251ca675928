package router

import (
	"regexp"
	"strings"
)

// YesNo is the ternary result of parsing an affirmation.
type YesNo int

const (
	AnswerIndeterminate YesNo = iota
	AnswerYes
	AnswerNo
)

// basic safety limit to avoid pathological inputs
const maxMessageLen = 16 * 1024 // 16KB

var (
	partNumberRe = regexp.MustCompile(`(?i)\bPS(\d{5,10})\b`)
	// a short PS token is an incomplete part number the user started typing
	shortPartRe = regexp.MustCompile(`(?i)\bPS(\d{1,4})\b`)
	zipRe       = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

	orderExplicitRe = regexp.MustCompile(`(?i)\border(?:\s*(?:number|no\.?|id|#))?\s*[:#]?\s*([A-Za-z]{0,2}-?\d{5,12})\b`)
	orderBareRe     = regexp.MustCompile(`\b(\d{7,12})\b`)

	modelExplicitRe = regexp.MustCompile(`(?i)\bmodel(?:\s*(?:number|no\.?|#))?\s*(?:is|:|=)?\s*([A-Za-z0-9][A-Za-z0-9_\-]{4,23})\b`)
	modelTokenRe    = regexp.MustCompile(`\b[A-Z0-9][A-Z0-9_\-]{4,23}\b`)
)

// modelNoise rejects shouty plain words that look like model tokens but are
// ordinary vocabulary in this domain.
var modelNoise = map[string]bool{
	"DRAIN": true, "DRAINING": true, "INSTALL": true, "INSTALLATION": true,
	"REFUND": true, "RETURN": true, "RETURNS": true, "SHIPPING": true,
	"ORDER": true, "NUMBER": true, "DISHWASHER": true, "REFRIGERATOR": true,
	"FRIDGE": true, "FREEZER": true, "COMPATIBLE": true, "COMPATIBILITY": true,
	"PLEASE": true, "THANKS": true, "BROKEN": true, "MANUAL": true,
}

// ExtractPartNumber returns a normalized full PartSelect number (PS + 5-10
// digits) found in plain text or URL-shaped text, or "" when absent.
func ExtractPartNumber(text string) string {
	if len(text) > maxMessageLen {
		text = text[:maxMessageLen]
	}
	if m := partNumberRe.FindStringSubmatch(text); m != nil {
		return "PS" + m[1]
	}
	return ""
}

// ExtractShortPartToken returns an incomplete PS token (1-4 digits), used to
// ask the user for the full number. A full part number suppresses it.
func ExtractShortPartToken(text string) string {
	if ExtractPartNumber(text) != "" {
		return ""
	}
	if m := shortPartRe.FindStringSubmatch(text); m != nil {
		return "PS" + m[1]
	}
	return ""
}

// ExtractModelNumber prefers an explicit "model ... TOKEN" phrasing, then
// falls back to scanning for model-shaped tokens: at least one letter and one
// digit, not PS-prefixed, not a pure digit run, not a noise word.
func ExtractModelNumber(text string) string {
	if len(text) > maxMessageLen {
		text = text[:maxMessageLen]
	}
	if m := modelExplicitRe.FindStringSubmatch(text); m != nil {
		cand := strings.ToUpper(m[1])
		if isModelShaped(cand) {
			return cand
		}
	}
	for _, tok := range modelTokenRe.FindAllString(strings.ToUpper(text), -1) {
		if isModelShaped(tok) {
			return tok
		}
	}
	return ""
}

func isModelShaped(tok string) bool {
	if strings.HasPrefix(tok, "PS") && allDigits(tok[2:]) {
		return false
	}
	if allDigits(tok) {
		// serial-number shaped
		return false
	}
	if modelNoise[tok] {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range tok {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// ExtractOrderID accepts an explicit "order #..." phrasing or a bare 7-12
// digit run. Five digit runs are left to ExtractZip.
func ExtractOrderID(text string) string {
	if m := orderExplicitRe.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1])
	}
	if m := orderBareRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractZip returns a five-digit US ZIP (the +4 suffix is dropped), skipping
// runs embedded in a longer number. A five-digit run claimed by an explicit
// "order #..." phrasing is the order id, not a ZIP.
func ExtractZip(text string) string {
	orderStart, orderEnd := -1, -1
	if loc := orderExplicitRe.FindStringSubmatchIndex(text); loc != nil {
		orderStart, orderEnd = loc[2], loc[3]
	}
	for _, m := range zipRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2], m[3]
		// reject when embedded in a longer digit run (e.g. an order id)
		if start > 0 && isDigit(text[start-1]) {
			continue
		}
		if end < len(text) && isDigit(text[end]) {
			continue
		}
		if start >= orderStart && end <= orderEnd {
			continue
		}
		return text[start:end]
	}
	return ""
}

// ExtractEmail returns the first email address in the text, lowercased.
func ExtractEmail(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	return ""
}

// ---- boolean signal predicates ----

var humanPhrases = []string{
	"human", "real person", "live agent", "an agent", "a representative",
	"representative", "speak to someone", "talk to someone", "talk to a person",
	"customer service rep", "operator", "transfer me",
}

// WantsHuman reports whether the user asked for a human handoff.
func WantsHuman(text string) bool {
	return containsAny(normalize(text), humanPhrases)
}

var alternativePhrases = []string{
	"alternative", "alternatives", "substitute", "substitutes", "equivalent",
	"similar part", "other options", "replacement options", "instead of this part",
}

// WantsAlternatives reports whether the user asked for alternative parts.
func WantsAlternatives(text string) bool {
	return containsAny(normalize(text), alternativePhrases)
}

var orderSupportPhrases = []string{
	"return", "refund", "shipping", "shipped", "delivery", "deliver",
	"track", "tracking", "cancel my order", "where is my order", "my order",
	"order status",
}

// WantsReturnRefundShipping reports order-support phrasing around returns,
// refunds, shipping, and tracking.
func WantsReturnRefundShipping(text string) bool {
	return containsAny(normalize(text), orderSupportPhrases)
}

var smallTalkSet = map[string]bool{
	"hi": true, "hello": true, "hey": true, "yo": true, "greetings": true,
	"hi there": true, "hello there": true, "good morning": true,
	"good afternoon": true, "good evening": true, "how are you": true,
	"whats up": true, "what's up": true,
}

// LooksLikeSmallTalk matches a closed set of greetings after normalization.
func LooksLikeSmallTalk(text string) bool {
	n := normalize(text)
	n = strings.TrimRight(n, "!.?")
	n = strings.TrimSpace(n)
	return smallTalkSet[n]
}

// ackSet is compared letters-only so "ok!", "o.k." and "OK" all match.
var ackSet = map[string]bool{
	"ok": true, "okay": true, "k": true, "kk": true, "sure": true,
	"thanks": true, "thankyou": true, "thx": true, "ty": true,
	"gotit": true, "done": true, "next": true, "cool": true, "great": true,
	"perfect": true, "alright": true, "soundsgood": true, "willdo": true,
	"onit": true, "okthanks": true,
}

// LooksLikeAck matches a closed set of acknowledgements, compared with
// non-letters stripped.
func LooksLikeAck(text string) bool {
	return ackSet[lettersOnly(text)]
}

var yesWords = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true, "correct": true,
	"worked": true, "definitely": true, "affirmative": true,
}

var yesPhrases = []string{
	"it did", "i did", "that fixed", "fixed it", "it worked", "it is", "they are",
}

var noWords = map[string]bool{
	"no": true, "nope": true, "nah": true, "negative": true, "didnt": true,
}

var noPhrases = []string{
	"it didn't", "it didnt", "did not", "didn't", "not yet", "still not",
	"it isn't", "it isnt", "no luck", "nothing changed",
}

// ParseYesNo is a ternary parse: AnswerYes, AnswerNo, or AnswerIndeterminate.
// Negative forms are checked first so "it didn't work" never reads as yes.
// Single-word cues match whole words only; "noise" must not read as "no".
func ParseYesNo(text string) YesNo {
	n := normalize(text)
	if containsAny(n, noPhrases) || hasWord(n, noWords) {
		return AnswerNo
	}
	if containsAny(n, yesPhrases) || hasWord(n, yesWords) {
		return AnswerYes
	}
	return AnswerIndeterminate
}

// hasWord reports whether any word of the normalized text, with surrounding
// punctuation stripped, is in the set.
func hasWord(normalized string, set map[string]bool) bool {
	for _, w := range strings.Fields(normalized) {
		w = strings.Trim(w, ".,!?;:'\"()")
		if set[w] {
			return true
		}
	}
	return false
}

// ---- raw intent inference ----

var installKeywords = []string{
	"install", "installing", "installation", "how do i replace",
	"how to replace", "how do i put", "mounting", "attach", "fit it in",
}

var compatKeywords = []string{
	"compatible", "compatibility", "fit my", "fits my", "work with",
	"works with", "will this fit", "does it fit", "right part for",
}

var troubleKeywords = []string{
	"not working", "not draining", "won't drain", "wont drain", "not cooling",
	"not cold", "won't start", "wont start", "doesn't", "doesnt", "isn't working",
	"broken", "leaking", "leak", "noise", "noisy", "humming", "buzzing",
	"grinding", "rattling", "error code", "error", "flashing", "beeping",
	"stopped", "stuck", "jammed", "too warm", "warming up", "won't", "wont",
}

// InferIntent makes a coarse raw-intent guess from the current message alone.
// The precedence is a deliberate priority list: installation and compatibility
// win over a part mention so a part number inside an install question never
// collapses to a bare lookup.
func InferIntent(text string) Intent {
	n := normalize(text)
	switch {
	case WantsHuman(n):
		return IntentOrderSupport
	case containsAny(n, installKeywords):
		return IntentInstallationHelp
	case containsAny(n, compatKeywords):
		return IntentCompatibilityCheck
	case WantsAlternatives(n) || ExtractPartNumber(text) != "" || strings.Contains(n, "partselect.com"):
		return IntentPartLookup
	case WantsReturnRefundShipping(n) || strings.Contains(n, "order") ||
		ExtractOrderID(text) != "" || looksLikeLoneZip(text):
		return IntentOrderSupport
	case containsAny(n, troubleKeywords):
		return IntentTroubleshooting
	default:
		return IntentUnknown
	}
}

// looksLikeLoneZip guards the order branch: a five digit run only signals
// order support, never part lookup.
func looksLikeLoneZip(text string) bool {
	return ExtractZip(text) != ""
}

// ---- small text helpers ----

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(text))), " ")
}

func lettersOnly(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsAny(normalized string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
