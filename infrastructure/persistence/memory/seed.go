package memory

import (
	"leavn/domain/scripture"
	"leavn/domain/situations"
)

// SeedSituations returns the shipped catalog: four curated situations, each
// carrying at least one scripture reference. IDs are stable slugs that
// clients may persist in favorites.
func SeedSituations() []situations.LifeSituation {
	return []situations.LifeSituation{
		{
			ID:          "anxiety-at-work",
			Title:       "Anxiety at Work",
			Description: "Finding calm when deadlines, conflict, or uncertainty at work feel overwhelming.",
			Category:    situations.CategoryCareer,
			Emotions:    []situations.EmotionalState{situations.EmotionAnxious, situations.EmotionFearful},
			Scriptures: []scripture.Reference{
				scripture.NewRangeReference("Philippians", 4, 6, 7).
					WithPreview("Don't be anxious about anything, but in everything, by prayer and petition with thanksgiving, let your requests be made known to God."),
				scripture.NewReference("Matthew", 6, 34).
					WithPreview("Therefore don't be anxious for tomorrow, for tomorrow will be anxious for itself."),
				scripture.NewReference("1 Peter", 5, 7).
					WithPreview("Casting all your worries on him, because he cares for you."),
			},
			Prayers: []situations.Prayer{
				{
					Title: "A Prayer for a Worried Mind",
					Text:  "Father, quiet my racing thoughts. Remind me that my worth is not measured by my output, and that you hold tomorrow. Give me peace that outlasts this deadline. Amen.",
				},
			},
			Resources: []situations.Resource{
				{Title: "Breath Prayer: A Practice for Anxious Moments", URL: "https://leavn.app/resources/breath-prayer"},
			},
		},
		{
			ID:          "grief-and-loss",
			Title:       "Grief and Loss",
			Description: "Scripture and prayer for the long, uneven road of mourning someone you love.",
			Category:    situations.CategoryEmotional,
			Emotions:    []situations.EmotionalState{situations.EmotionGrieving},
			Scriptures: []scripture.Reference{
				scripture.NewReference("Psalm", 34, 18).
					WithPreview("The LORD is near to those who have a broken heart, and saves those who have a crushed spirit."),
				scripture.NewReference("Matthew", 5, 4).
					WithPreview("Blessed are those who mourn, for they shall be comforted."),
				scripture.NewReference("Revelation", 21, 4).
					WithPreview("He will wipe away from them every tear from their eyes. Death will be no more."),
			},
			Prayers: []situations.Prayer{
				{
					Title: "A Prayer in Mourning",
					Text:  "God of all comfort, I bring you my sorrow without pretending it is smaller than it is. Stay close in the silence, and teach me to grieve with hope. Amen.",
				},
			},
			Resources: []situations.Resource{
				{Title: "Walking with Grief: A Reading Plan", URL: "https://leavn.app/resources/walking-with-grief"},
			},
		},
		{
			ID:          "joy-and-blessings",
			Title:       "Joy and Blessings",
			Description: "Celebrating good gifts and learning gratitude as a daily practice.",
			Category:    situations.CategorySpiritual,
			Emotions:    []situations.EmotionalState{situations.EmotionJoyful, situations.EmotionGrateful},
			Scriptures: []scripture.Reference{
				scripture.NewReference("Psalm", 118, 24).
					WithPreview("This is the day that the LORD has made. We will rejoice and be glad in it!"),
				scripture.NewReference("James", 1, 17).
					WithPreview("Every good gift and every perfect gift is from above, coming down from the Father of lights."),
				scripture.NewReference("Philippians", 4, 4).
					WithPreview("Rejoice in the Lord always! Again I will say, 'Rejoice!'"),
			},
			Prayers: []situations.Prayer{
				{
					Title: "A Prayer of Thanksgiving",
					Text:  "Giver of every good gift, open my eyes to the blessings I rush past. Let gratitude become my reflex and joy my habit. Amen.",
				},
			},
		},
		{
			ID:          "relationship-conflict",
			Title:       "Relationship Conflict",
			Description: "Seeking forgiveness, patience, and honest reconciliation when a relationship is strained.",
			Category:    situations.CategoryRelational,
			Emotions:    []situations.EmotionalState{situations.EmotionAngry, situations.EmotionHopeful},
			Scriptures: []scripture.Reference{
				scripture.NewReference("Ephesians", 4, 32).
					WithPreview("Be kind to one another, tender hearted, forgiving each other, just as God also in Christ forgave you."),
				scripture.NewReference("Colossians", 3, 13).
					WithPreview("Bearing with one another, and forgiving each other, if any man has a complaint against any."),
				scripture.NewReference("Matthew", 18, 15).
					WithPreview("If your brother sins against you, go, show him his fault between you and him alone."),
			},
			Prayers: []situations.Prayer{
				{
					Title: "A Prayer Before a Hard Conversation",
					Text:  "Lord, soften what anger has hardened in me. Give me words that repair rather than wound, and the humility to own my part. Amen.",
				},
			},
			Resources: []situations.Resource{
				{Title: "Steps Toward Reconciliation", URL: "https://leavn.app/resources/reconciliation"},
			},
		},
	}
}
