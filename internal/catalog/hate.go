package catalog

import (
	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
)

var hateValue = []string{
	"Doodoo breath!",
	"Poopy head!",
	"Butthead!",
	"Dummy.",
}

var hateQuality = []string{
	"Stuck up, half-witted, scruffy looking nerf-herder!",
	"Your mother was a hamster!",
	"Your father smelt of elderberries!",
	"Does Barry Manilow know you raid his wardrobe?",
	"Warthog faced buffoon!",
	"You're just dumber than a bag of hammers.",
	"Were you always this stupid, or did you take lessons?",
	"You are a neo-maxi zoom dweebie.",
}

var hateLuxury = []string{
	"It may be that the purpose of your life is solely to be a warning to others.",
	"If we throw you a going away party, will you?",
	"It must be hard being brilliant with no way to prove it.",
	"You are not a good person. You know that, right?",
	`Here are the test results: You are a horrible person. I'm serious, that's what it says: "A horrible person." We weren't even testing for that.`,
	"You're not just a regular moron. You're the product of the greatest minds of a generation working together with the express purpose of building the *dumbest* moron who ever lived.",
	"I advise you to have the top of your head taken off, the contents removed, and allow some sensible person to poo in it.",
	"You'd bring a fork to an all-you-can-eat soup bar.",
	"Some people spread joy wherever they go. You spread joy whenever you go.",
	"Just when I think you've said the stupidest thing ever, you keep talking.",
	"You're morally reprehensible, vulgar, insensitive, selfish, stupid, you have no taste, a lousy sense of humour and you smell.",
	"You are a sad, strange little person, and you have my pity.",
	"Tell me, did you dress like that on purpose?",
	"You make me feel like a better person.",
	"I've trained dogs with more personality than you.",
	"If all the village idiots left their villages and formed their own village, in that village, YOU would be the village idiot.",
	"The YouTube comments about you are all true.",
}

// Hate is the HaterMatic insult catalog.
var Hate = phrase.MustCatalog(HateName,
	phrase.MustTable(domain.Value, hateValue),
	phrase.MustTable(domain.Quality, hateQuality),
	phrase.MustTable(domain.Luxury, hateLuxury),
)
