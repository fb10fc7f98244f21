package service

import (
	"fmt"
	"strings"
)

// BuildCaption synthesizes the final caption for one platform. The item's own
// caption and hashtags win when present; otherwise the caption is derived
// from the idea and the hashtags fall back to the configured defaults.
func BuildCaption(platform, idea, caption, hashtags, defaultHashtags string) string {
	caption = strings.TrimSpace(caption)
	hashtags = strings.TrimSpace(hashtags)

	if caption == "" {
		caption = fmt.Sprintf("%s (auto-generated caption for %s)", idea, platform)
	}
	if hashtags == "" {
		hashtags = defaultHashtags
	}

	if hashtags != "" {
		return caption + "\n\n" + hashtags
	}
	return caption
}
