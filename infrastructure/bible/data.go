package bible

import "leavn/domain/scripture"

// embeddedVerses returns the World English Bible (public domain) subset
// shipped with the binary.
func embeddedVerses() []scripture.Verse {
	return []scripture.Verse{
		{Book: "Philippians", Chapter: 4, Number: 4, Text: "Rejoice in the Lord always! Again I will say, \"Rejoice!\""},
		{Book: "Philippians", Chapter: 4, Number: 6, Text: "In nothing be anxious, but in everything, by prayer and petition with thanksgiving, let your requests be made known to God."},
		{Book: "Philippians", Chapter: 4, Number: 7, Text: "And the peace of God, which surpasses all understanding, will guard your hearts and your thoughts in Christ Jesus."},
		{Book: "Matthew", Chapter: 5, Number: 4, Text: "Blessed are those who mourn, for they shall be comforted."},
		{Book: "Matthew", Chapter: 6, Number: 34, Text: "Therefore don't be anxious for tomorrow, for tomorrow will be anxious for itself. Each day's own evil is sufficient."},
		{Book: "Matthew", Chapter: 18, Number: 15, Text: "If your brother sins against you, go, show him his fault between you and him alone. If he listens to you, you have gained back your brother."},
		{Book: "1 Peter", Chapter: 5, Number: 7, Text: "casting all your worries on him, because he cares for you."},
		{Book: "Psalm", Chapter: 23, Number: 1, Text: "Yahweh is my shepherd; I shall lack nothing."},
		{Book: "Psalm", Chapter: 23, Number: 4, Text: "Even though I walk through the valley of the shadow of death, I will fear no evil, for you are with me. Your rod and your staff, they comfort me."},
		{Book: "Psalm", Chapter: 34, Number: 18, Text: "Yahweh is near to those who have a broken heart, and saves those who have a crushed spirit."},
		{Book: "Psalm", Chapter: 118, Number: 24, Text: "This is the day that Yahweh has made. We will rejoice and be glad in it!"},
		{Book: "Revelation", Chapter: 21, Number: 4, Text: "He will wipe away from them every tear from their eyes. Death will be no more; neither will there be mourning, nor crying, nor pain, any more. The first things have passed away."},
		{Book: "James", Chapter: 1, Number: 17, Text: "Every good gift and every perfect gift is from above, coming down from the Father of lights, with whom can be no variation, nor turning shadow."},
		{Book: "Ephesians", Chapter: 4, Number: 32, Text: "And be kind to one another, tender hearted, forgiving each other, just as God also in Christ forgave you."},
		{Book: "Colossians", Chapter: 3, Number: 13, Text: "bearing with one another, and forgiving each other, if any man has a complaint against any; even as Christ forgave you, so you also do."},
		{Book: "John", Chapter: 3, Number: 16, Text: "For God so loved the world, that he gave his one and only Son, that whoever believes in him should not perish, but have eternal life."},
		{Book: "Proverbs", Chapter: 3, Number: 5, Text: "Trust in Yahweh with all your heart, and don't lean on your own understanding."},
		{Book: "Proverbs", Chapter: 3, Number: 6, Text: "In all your ways acknowledge him, and he will make your paths straight."},
		{Book: "Isaiah", Chapter: 41, Number: 10, Text: "Don't you be afraid, for I am with you. Don't be dismayed, for I am your God. I will strengthen you. Yes, I will help you. Yes, I will uphold you with the right hand of my righteousness."},
	}
}
