package fallback

// Category names one coarse intent the off-topic handler recognizes.
type Category string

const (
	CategoryGreeting Category = "greeting"
	CategoryThanks   Category = "thanks"
	CategoryFarewell Category = "farewell"
	CategoryJoke     Category = "joke"
	CategoryGeneric  Category = "generic"
)

// rule pairs a keyword set with its category. Rules are evaluated top to
// bottom against the lowercased query; the first rule with any keyword hit
// wins. The final rule has no keywords and always matches.
type rule struct {
	category Category
	keywords []string
}

// rules is ordered: joke cues before greeting so "hi, tell me a joke" lands
// on the joke redirect, and farewell before thanks is irrelevant since the
// word lists are disjoint.
var rules = []rule{
	{category: CategoryJoke, keywords: []string{"joke", "funny", "laugh", "humor"}},
	{category: CategoryGreeting, keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}},
	{category: CategoryFarewell, keywords: []string{"goodbye", "bye", "see you", "later"}},
	{category: CategoryThanks, keywords: []string{"thank", "thanks", "appreciate"}},
	{category: CategoryGeneric}, // always matches
}

const greetingMessage = `Hello and welcome! I'm your telecom service assistant, here to help with your mobile service needs.

I can help you with:

1. Billing questions — review your bill, explain charges, payment assistance
2. Network problems — signal issues, slow internet, coverage concerns
3. Plan recommendations — better plans, upgrade options, data packages
4. Technical support — device settings, feature activation, troubleshooting

What would you like assistance with today?`

const thanksMessage = `You're welcome! Thank you for using our telecom service assistant — I'm glad I could help.

Feel free to ask if you have any other questions about your bill, network connectivity, service plans, or technical support.

Support contacts:
- Customer service: 198
- Technical support: available 24/7

Have a great day!`

const farewellMessage = `Thank you for chatting with us — goodbye for now!

If anything comes up with your bill, network connectivity, or service plan, I'm here around the clock. You can also reach customer service at 198.`

const jokeMessage = `I appreciate the lighter moment, but I'm specifically designed to help with telecom services!

Here's what I can assist you with:

- Billing and payments: bills, charges, payment plans, outstanding balances
- Network issues: connectivity problems, coverage, slow speeds, outages
- Plan recommendations: data packages, roaming options, family plans
- Technical support: device setup, APN settings, VoLTE and VoWiFi

How can I help you with your telecom needs today?`

const genericMessage = `I'm specialized in telecom services and may not be able to help with that particular request.

I can assist you with:

- Billing and account management: bill inquiries, payment plans, account updates
- Network troubleshooting: signal and connectivity issues, coverage checks
- Service recommendations: plan comparisons, data packages, roaming plans
- Technical documentation: device configuration, feature setup, APN settings

Please ask me a question related to these telecom services, and I'll be happy to help!

Examples:
- "Why is my bill higher this month?"
- "I have poor signal at home, can you help?"
- "What's the best plan for heavy data usage?"
- "How do I enable VoLTE on my device?"`

var messageByCategory = map[Category]string{
	CategoryGreeting: greetingMessage,
	CategoryThanks:   thanksMessage,
	CategoryFarewell: farewellMessage,
	CategoryJoke:     jokeMessage,
	CategoryGeneric:  genericMessage,
}
