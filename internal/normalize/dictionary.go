package normalize

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/VisheshJha/PromptPrune-sub000/internal/logging"
)

// builtins maps known misspellings and text-speak to canonical words.
// Matching is whole-word and case-insensitive; keys must be lowercase.
// Edit-distance fuzzy matching is deliberately not used: it over-corrects
// valid words, so only exact entries in this table are ever touched.
var builtins = map[string]string{
	// text-speak
	"plz":  "please",
	"pls":  "please",
	"u":    "you",
	"ur":   "your",
	"thx":  "thanks",
	"abt":  "about",
	"b4":   "before",
	"gr8":  "great",
	"msg":  "message",
	"bc":   "because",
	"cuz":  "because",
	"coz":  "because",
	"rly":  "really",
	"tmrw": "tomorrow",
	"2day": "today",
	"dont": "don't",
	"cant": "can't",
	"wont": "won't",
	"im":   "I'm",
	"ive":  "I've",

	// common misspellings
	"wrte":       "write",
	"wirte":      "write",
	"writting":   "writing",
	"gud":        "good",
	"teh":        "the",
	"adn":        "and",
	"taht":       "that",
	"thier":      "their",
	"recieve":    "receive",
	"beleive":    "believe",
	"definately": "definitely",
	"seperate":   "separate",
	"occured":    "occurred",
	"untill":     "until",
	"wich":       "which",
	"becuase":    "because",
	"freind":     "friend",
	"busines":    "business",
	"profesional": "professional",
	"summery":    "summary",
	"anaylsis":   "analysis",
	"artical":    "article",
	"reprot":     "report",
	"explane":    "explain",
	"descibe":    "describe",
}

// Dictionary is a correction table. The built-in entries always win over
// user-supplied ones so the idempotence contract of Normalize cannot be
// broken by a user mapping a canonical word somewhere else.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewDictionary returns a dictionary holding only the built-in table.
func NewDictionary() *Dictionary {
	entries := make(map[string]string, len(builtins))
	for k, v := range builtins {
		entries[k] = v
	}
	return &Dictionary{entries: entries}
}

// Lookup returns the canonical replacement for a lowercase token.
func (d *Dictionary) Lookup(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	repl, ok := d.entries[word]
	return repl, ok
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Merge adds user entries. Entries that would shadow a built-in key,
// rewrite a built-in canonical value, or chain into another entry are
// skipped: any surviving entry maps directly to a fixed point.
func (d *Dictionary) Merge(user map[string]string) {
	log := logging.Get(logging.CategoryNormalize)

	canonical := make(map[string]bool, len(builtins))
	for _, v := range builtins {
		canonical[strings.ToLower(v)] = true
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for k, v := range user {
		key := strings.ToLower(strings.TrimSpace(k))
		val := strings.TrimSpace(v)
		if key == "" || val == "" || key == strings.ToLower(val) {
			continue
		}
		if _, isBuiltin := builtins[key]; isBuiltin {
			log.Debug("user entry shadows built-in, skipped", zap.String("key", key))
			continue
		}
		if canonical[key] {
			log.Debug("user entry rewrites canonical word, skipped", zap.String("key", key))
			continue
		}
		if _, chains := builtins[strings.ToLower(val)]; chains {
			log.Debug("user entry chains into another correction, skipped", zap.String("key", key))
			continue
		}
		d.entries[key] = val
	}
}

// LoadUserFile merges a YAML file of misspelling -> replacement pairs.
func (d *Dictionary) LoadUserFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}
	var user map[string]string
	if err := yaml.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	d.Merge(user)
	return nil
}
