package recommendations

var categoryOrder = []Category{
	CategoryPerformance,
	CategoryAccessibility,
	CategoryBestPractices,
	CategorySEO,
}

// allowlists holds the curated audit identifiers per category. Order is display order.
var allowlists = map[Category][]string{
	CategoryPerformance: {
		"first-contentful-paint",
		"largest-contentful-paint",
		"total-blocking-time",
		"cumulative-layout-shift",
		"speed-index",
		"interactive",
		"render-blocking-resources",
		"server-response-time",
		"redirects",
		"unused-css-rules",
		"unused-javascript",
		"unminified-css",
		"unminified-javascript",
		"modern-image-formats",
		"uses-optimized-images",
		"uses-responsive-images",
		"offscreen-images",
		"efficient-animated-content",
		"uses-text-compression",
		"uses-long-cache-ttl",
		"font-display",
		"dom-size",
		"bootup-time",
		"mainthread-work-breakdown",
		"third-party-summary",
	},
	CategoryAccessibility: {
		"color-contrast",
		"image-alt",
		"label",
		"link-name",
		"button-name",
		"document-title",
		"html-has-lang",
		"html-lang-valid",
		"meta-viewport",
		"heading-order",
		"aria-allowed-attr",
		"aria-required-attr",
		"aria-valid-attr-value",
		"duplicate-id-aria",
		"frame-title",
		"list",
		"listitem",
		"tabindex",
	},
	CategoryBestPractices: {
		"is-on-https",
		"redirects-http",
		"errors-in-console",
		"inspector-issues",
		"deprecations",
		"third-party-cookies",
		"image-aspect-ratio",
		"image-size-responsive",
		"doctype",
		"charset",
		"csp-xss",
		"geolocation-on-start",
		"notification-on-start",
		"paste-preventing-inputs",
		"valid-source-maps",
	},
	CategorySEO: {
		"document-title",
		"meta-description",
		"http-status-code",
		"is-crawlable",
		"robots-txt",
		"crawlable-anchors",
		"link-text",
		"image-alt",
		"hreflang",
		"canonical",
		"structured-data",
	},
}

type friendlyEntry struct {
	id   string
	text string
}

// friendlyEntries is a single flat key space shared by every category.
// A later entry for an id replaces an earlier one everywhere, so the SEO
// wording of document-title and image-alt also shows up under accessibility.
var friendlyEntries = []friendlyEntry{
	{"first-contentful-paint", "Time until the first text or image appears. Visitors on slow connections stare at a blank page until this happens. https://web.dev/articles/fcp"},
	{"largest-contentful-paint", "Time until the main content of the page is visible. Optimize your largest image or text block so the page feels loaded sooner. https://web.dev/articles/lcp"},
	{"total-blocking-time", "Long scripts block the page from responding to clicks and taps. Break up long tasks and defer work that is not needed right away. https://web.dev/articles/tbt"},
	{"cumulative-layout-shift", "Content jumps around while the page loads. Reserve space for images, ads and embeds so elements stay put. https://web.dev/articles/cls"},
	{"speed-index", "How quickly the visible part of the page fills in. Prioritize above-the-fold content."},
	{"interactive", "Time until the page fully responds to input. Reduce JavaScript that runs during load."},
	{"render-blocking-resources", "Some CSS and JavaScript files must finish loading before anything is drawn. Inline critical styles and defer the rest. https://developer.chrome.com/docs/lighthouse/performance/render-blocking-resources/"},
	{"server-response-time", "Your server takes too long to send the first byte. Consider caching, a CDN, or a faster host."},
	{"redirects", "Each redirect adds a round trip before the page starts loading. Link straight to the final URL."},
	{"unused-css-rules", "Stylesheets contain rules this page never uses. Remove or split them to cut download size."},
	{"unused-javascript", "Scripts contain code this page never runs. Remove or lazy-load it to speed things up. https://developer.chrome.com/docs/lighthouse/performance/unused-javascript/"},
	{"unminified-css", "CSS files include whitespace and comments. Minify them to shrink downloads."},
	{"unminified-javascript", "JavaScript files include whitespace and comments. Minify them to shrink downloads."},
	{"modern-image-formats", "Images would be much smaller as WebP or AVIF without losing visible quality. https://developer.chrome.com/docs/lighthouse/performance/uses-webp-images/"},
	{"uses-optimized-images", "Images could be compressed further without visible quality loss."},
	{"uses-responsive-images", "Images are larger than the size they are displayed at. Serve appropriately sized versions for each screen."},
	{"offscreen-images", "Images below the fold load immediately. Lazy-load them so the visible content arrives first."},
	{"efficient-animated-content", "Animated GIFs are heavy. Replace them with video formats for much smaller files."},
	{"uses-text-compression", "Text files are sent uncompressed. Enable gzip or Brotli on your server."},
	{"uses-long-cache-ttl", "Static files expire from the browser cache too quickly. Set long cache lifetimes so repeat visits are faster."},
	{"font-display", "Text stays invisible while web fonts load. Use font-display: swap so visitors can read right away."},
	{"dom-size", "The page has a very large number of elements, which slows down rendering and scripts. Simplify the markup where you can."},
	{"bootup-time", "JavaScript takes a long time to parse and run. Ship less code or split it into smaller chunks."},
	{"mainthread-work-breakdown", "The browser's main thread is busy for a long time during load. Reduce script, style and layout work."},
	{"third-party-summary", "Third-party scripts such as ads, analytics and widgets slow down the page. Load only the ones you need, and load them late."},

	{"color-contrast", "Some text does not stand out enough from its background. Low contrast is hard to read for many visitors. https://dequeuniversity.com/rules/axe/4.8/color-contrast"},
	{"image-alt", "Images need alternative text so screen reader users know what they show."},
	{"label", "Form fields need labels so assistive technology can announce what to type."},
	{"link-name", "Links need descriptive text so screen reader users know where they lead."},
	{"button-name", "Buttons need accessible names so assistive technology can announce what they do."},
	{"document-title", "The page needs a title so screen reader users can tell which page they are on."},
	{"html-has-lang", "Declare the page language on the <html> element so screen readers pronounce content correctly."},
	{"html-lang-valid", "The declared page language is not a valid language code."},
	{"meta-viewport", "Zooming is disabled. Allow users to zoom so visitors with low vision can read the page."},
	{"heading-order", "Headings skip levels. A logical heading order helps visitors navigate the page structure."},
	{"aria-allowed-attr", "Some elements use ARIA attributes that are not allowed for their role."},
	{"aria-required-attr", "Some ARIA roles are missing attributes they require."},
	{"aria-valid-attr-value", "Some ARIA attributes have invalid values."},
	{"duplicate-id-aria", "ARIA IDs must be unique so assistive technology can find the right element."},
	{"frame-title", "Frames and iframes need titles that describe their content."},
	{"list", "Lists must contain only list items and supporting elements."},
	{"listitem", "List items must be placed inside a list."},
	{"tabindex", "Avoid positive tabindex values. They make keyboard navigation order unpredictable."},

	{"is-on-https", "The page or some of its resources are not served over HTTPS. Secure every request to protect your visitors. https://developer.chrome.com/docs/lighthouse/pwa/is-on-https/"},
	{"redirects-http", "HTTP traffic is not redirected to HTTPS."},
	{"errors-in-console", "Errors were logged to the browser console. They often point to broken features."},
	{"inspector-issues", "The browser flagged issues with this page in its developer tools."},
	{"deprecations", "The page uses browser features that are being removed. Update the affected code before it breaks."},
	{"third-party-cookies", "The page relies on third-party cookies, which browsers are phasing out."},
	{"image-aspect-ratio", "Some images are displayed with the wrong aspect ratio and look stretched."},
	{"image-size-responsive", "Some images are too low resolution for the size they are shown at and look blurry."},
	{"doctype", "The page is missing an HTML doctype, which puts browsers into quirks mode."},
	{"charset", "Declare a character encoding early in the page so text renders correctly."},
	{"csp-xss", "Add a strong Content Security Policy to protect against cross-site scripting attacks."},
	{"geolocation-on-start", "The page asks for location access on load. Ask only after a user action."},
	{"notification-on-start", "The page asks for notification permission on load. Ask only after a user action."},
	{"paste-preventing-inputs", "Some inputs block pasting, which frustrates users of password managers."},
	{"valid-source-maps", "Large scripts are missing source maps, which makes debugging production errors harder."},

	{"document-title", "The page needs a descriptive <title>. Search engines show it as the headline of your result. https://developer.chrome.com/docs/lighthouse/seo/document-title/"},
	{"meta-description", "Add a meta description. Search engines often show it as the snippet under your title. https://developer.chrome.com/docs/lighthouse/seo/meta-description/"},
	{"http-status-code", "The page returned an error status code, so search engines may not index it."},
	{"is-crawlable", "The page is blocked from indexing. Check robots meta tags and headers if you want it in search results."},
	{"robots-txt", "Your robots.txt file is invalid, so crawlers may not understand how to index the site."},
	{"crawlable-anchors", "Some links cannot be followed by search engines. Use real href attributes."},
	{"link-text", "Links need descriptive text. Avoid generic phrases like \"click here\"."},
	{"image-alt", "Images need descriptive alt text so search engines understand what they show. https://developer.chrome.com/docs/lighthouse/seo/image-alt/"},
	{"hreflang", "The hreflang tags are invalid, so search engines may show the wrong language version."},
	{"canonical", "The canonical link is invalid, which can split ranking signals between duplicate URLs."},
	{"structured-data", "Validate your structured data so search engines can show rich results."},
}

var friendlyDescriptions = buildFriendlyDescriptions(friendlyEntries)

func buildFriendlyDescriptions(entries []friendlyEntry) map[string]string {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.id] = e.text
	}
	return out
}

// Categories returns the fixed category order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// ParseCategory resolves a category name, accepting the upstream "best-practices" spelling.
func ParseCategory(raw string) (Category, bool) {
	switch raw {
	case "performance":
		return CategoryPerformance, true
	case "accessibility":
		return CategoryAccessibility, true
	case "bestPractices", "best-practices":
		return CategoryBestPractices, true
	case "seo":
		return CategorySEO, true
	default:
		return "", false
	}
}

// Allowlist returns a copy of the audit identifiers curated for a category.
func Allowlist(c Category) []string {
	return append([]string(nil), allowlists[c]...)
}

// FriendlyDescription returns the plain-language text registered for an audit identifier.
func FriendlyDescription(id string) (string, bool) {
	text, ok := friendlyDescriptions[id]
	return text, ok
}
