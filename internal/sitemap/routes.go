package sitemap

// StaticRoutes returns the fixed set of top-level pages with
// hand-chosen crawl hints. Pure data; a fresh slice each call so
// builders can append without aliasing.
func StaticRoutes() []Entry {
	return []Entry{
		{Kind: KindStatic, Path: "/", ChangeFreq: Daily, Priority: floatPtr(1.0)},
		{Kind: KindStatic, Path: "/blogs", ChangeFreq: Daily, Priority: floatPtr(0.9)},
		{Kind: KindStatic, Path: "/courses", ChangeFreq: Weekly, Priority: floatPtr(0.9)},
		{Kind: KindStatic, Path: "/events", ChangeFreq: Weekly, Priority: floatPtr(0.8)},
		{Kind: KindStatic, Path: "/gallery", ChangeFreq: Monthly, Priority: floatPtr(0.6)},
		{Kind: KindStatic, Path: "/about", ChangeFreq: Monthly, Priority: floatPtr(0.5)},
		{Kind: KindStatic, Path: "/contact", ChangeFreq: Yearly, Priority: floatPtr(0.5)},
	}
}
