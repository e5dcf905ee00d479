package goquery

// Boilerplate tables shared by the sanitizer, the container scorer and the
// skip filter. Each use site draws on a subset of the same groups so the
// lists cannot drift apart.

// structuralSelectors are removed outright by the sanitizer.
var structuralSelectors = []string{
	"script", "style", "nav", "header", "footer", "aside", "form", "button",
}

// cmsClassSelectors are exact class names of page furniture in common CMS themes.
var cmsClassSelectors = []string{
	".ad", ".advertisement", ".sidebar", ".social-share", ".comments",
	".related-posts", ".breaking-news", ".breadcrumb", ".navigation", ".menu",
	".widget", ".share", ".tags", ".category", ".author-bio",
}

// adFrameSelectors remove third-party ad and tracking iframes.
var adFrameSelectors = []string{
	`iframe[src*="ads"]`, `iframe[src*="doubleclick"]`,
}

// chromeTokens are class/id substrings that mark non-article chrome. The
// sanitizer removes elements carrying any of them.
var chromeTokens = []string{
	"ad-", "ads-", "banner", "breaking", "breadcrumb", "menu", "nav", "widget",
	"share", "social", "related", "recommend", "popular", "trending",
	"read-also", "read-more", "cookie", "policy", "sidebar",
}

// skipTokens are class/id substrings the content parsers refuse. The list is
// broader than chromeTokens because a skipped element is only ignored, not
// removed from the tree.
var skipTokens = []string{
	"breaking", "breadcrumb", "share", "social", "related", "recommend",
	"popular", "trending", "ads", "banner", "widget", "tag", "category",
	"comment", "caption", "byline", "meta", "promo", "newsletter", "subscribe",
	"footer", "copyright",
}

// Boilerplate phrase groups, lower-case. Matching is by substring.
var (
	// navigationPhrases are site navigation and sharing prompts.
	navigationPhrases = []string{
		"baca juga:", "baca juga ", "read also:", "breaking news",
		"dark/light mode", "switch mode", "subscribe now", "follow us",
		"share this", "related articles", "you may also like",
	}

	// legalPhrases are cookie, privacy and copyright notices.
	legalPhrases = []string{
		"cookie", "cookies", "política de cookies", "privacy policy",
		"política de privacidad", "aviso legal", "legal notice", "datenschutz",
		"impressum", "© 20", "copyright",
	}

	// commercePhrases are shopping cart and checkout chrome.
	commercePhrases = []string{
		"added to cart", "view cart", "continue shopping", "shopping cart",
		"checkout", "buy now", "añadido al carrito", "ver carrito",
		"seguir comprando", "carrito", "producto", "comprar", "warenkorb",
	}

	// accountPhrases are sign-up and newsletter prompts.
	accountPhrases = []string{
		"subscribe", "newsletter", "sign up", "login", "register", "account",
	}
)

// scorePenaltyPhrases penalize a candidate container when present anywhere
// in its text.
var scorePenaltyPhrases = concat(legalPhrases, commercePhrases, accountPhrases)

// skipPhrases reject an individual element when present in its text.
var skipPhrases = concat(navigationPhrases, legalPhrases, commercePhrases)

// excludedImageTokens mark decorative image sources.
var excludedImageTokens = []string{"icon", "logo", "avatar"}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
