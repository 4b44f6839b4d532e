package classify

// DefaultRules returns the curated default category rules. Email precedes
// Search so mail.google.com doesn't fall into the google.com bucket.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Email", Keywords: []string{
			"mail.google.com",
			"outlook.com",
			"gmail.com",
		}},
		{Category: "Search", Keywords: []string{
			"google.com",
			"bing.com",
			"duckduckgo.com",
			"chrome",
		}},
		{Category: "Freelancing/Jobs", Keywords: []string{
			"upwork.com",
			"wellfound.com",
			"taskrabbit.com",
			"linkedin.com/jobs",
		}},
		{Category: "Work/Documents", Keywords: []string{
			"sharepoint.com",
			"office.com",
			"docs.google.com",
		}},
		{Category: "Cloud/DevOps", Keywords: []string{
			"aws.amazon.com",
			"console.aws",
			"azure.com",
			"cloud.google.com",
		}},
		{Category: "E-commerce", Keywords: []string{
			"amazon.",
			"ebay.com",
			"shopify.com",
			"shopping",
		}},
		{Category: "Social Media", Keywords: []string{
			"facebook.com",
			"twitter.com",
			"linkedin.com",
			"instagram.com",
		}},
		{Category: "Development", Keywords: []string{
			"github.com",
			"gitlab.com",
			"stackoverflow.com",
			"codepen.io",
		}},
		{Category: "Entertainment", Keywords: []string{
			"netflix.com",
			"youtube.com",
			"spotify.com",
			"twitch.tv",
		}},
		{Category: "News", Keywords: []string{
			"news",
			"cnn.com",
			"bbc.com",
			"reddit.com",
		}},
		{Category: "Finance", Keywords: []string{
			"bank",
			"xero.com",
			"quickbooks.com",
			"mint.com",
		}},
		{Category: "Travel", Keywords: []string{
			"zipair.net",
			"booking.com",
			"expedia.com",
			"airbnb.com",
		}},
		{Category: "Real Estate", Keywords: []string{
			"loopnet.com",
			"zillow.com",
			"realtor.com",
		}},
	}
}
