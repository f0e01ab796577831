package catalog

import (
	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
)

var loveValue = []string{
	"YOU ROCK",
	"CUTE STUFF",
	"BE MINE",
	"MAYBE TONIGHT",
}

var loveQuality = []string{
	"I love the way your face is.",
	"Your hair is beautiful today.",
	"I love that outfit!",
	"You make me smile.",
	"You have a great laugh.",
	"I like you a lot.",
	"You have a good heart.",
	"You are awesome.",
}

// For those who have everything.
var loveLuxury = []string{
	"You take my breath away.",
	"I love you more than the moon and stars.",
	"You're the best part of my day.",
	"Love you, puppycat!",
	"I'll take care of dinner tonight.",
	"I love you like Kanye loves Kanye.",
	"I love you like grilled cheese loves tomato soup.",
	"You are cuter than a koala bear riding a red panda.",
	"I missed your face.",
	"You are my favorite person.",
	"The sun could never compare to the love your heart shines.",
	"You make my heart smile.",
	"There is nowhere I'd rather be than with you.",
	"I absolutely love who you are.",
	"You take my heart with you when you go.",
	"My heart beats for you.",
	"Seeing you makes any day better.",
}

// Love is the LoverMatic compliment catalog.
var Love = phrase.MustCatalog(LoveName,
	phrase.MustTable(domain.Value, loveValue),
	phrase.MustTable(domain.Quality, loveQuality),
	phrase.MustTable(domain.Luxury, loveLuxury),
)
