package catalog

// defaultSections is the "Teens, Feeds, and the Algorithm" questionnaire.
// P1 collects demographics, P2..P6 hold the Likert questions.
var defaultSections = []Section{
	{
		ID:          "p1",
		Title:       "P1. About you",
		Description: "Please provide the following information before starting the survey.",
		Questions:   []string{},
	},
	{
		ID:          "p2",
		Title:       "P2. Digital consumption experience",
		Description: "Teenagers today live in a world where every scroll, like, and share shapes a personalized digital experience that quietly influences their mood, interests, and identity. Based on your digital consumption experiences, please indicate your level of agreement.",
		Questions: []string{
			"I intentionally set limits on my screen use.",
			"I can control how much time I spend on screens.",
			"I often lose track of time while using screens.",
			"I am ready to be responsible for the negative outcomes caused by my screen use.",
			"My screen use supports my personal or professional goals.",
			"Screen time distracts me from important tasks.",
			"I use digital technologies mainly for purposeful activities.",
			"I feel that my actions matter in online communities.",
			"I can positively influence others in digital spaces.",
			"I feel powerless in online environments.",
			"I feel supported when people interact with me online.",
			"Online connections help me during difficult times.",
			"Improper behavior by others online stresses or annoys me.",
			"I feel good when people online behave respectfully.",
			"I appreciate it when users consider appropriateness before sharing content.",
			"Respectful behavior online makes digital spaces enjoyable.",
			"Online spaces often feel hostile or disrespectful.",
		},
	},
	{
		ID:          "p3",
		Title:       "P3. Perception evaluation",
		Description: "Perception evaluation explores how teens interpret and trust what algorithms show them—when over 70% of their online content is personalized, it shapes what they believe is real, relevant, or worth their attention. Please indicate your perception on the following items.",
		Questions: []string{
			"In most ways my life is close to my ideal.",
			"The conditions of my life are excellent.",
			"I am satisfied with my life.",
			"So far I have gotten the important things I want in life.",
			"If I could live my life over, I would change almost nothing.",
			"I feel in control over the information I provide on social networking sites.",
			"Privacy settings allow me to have full control over the information I provide on social networking sites.",
			"I feel in control of who can view my information on social networking sites.",
			"I am very attached to my online communities (e.g., forums, social media groups, online games).",
			"Other members of my online communities and I share the same objectives.",
			"The friendships I have with other online community members mean a lot to me.",
			"I see myself as part of my online communities.",
			"I am motivated to participate in the online community's activities because I am able to reach personal goals.",
		},
	},
	{
		ID:          "p4",
		Title:       "P4. Personal focus and emotional wellbeing",
		Description: "Personal focus and emotional wellbeing reveal how constant algorithmic engagement affects teens' attention and mood. Please indicate how often you experience the following.",
		Questions: []string{
			"It is easy for me to concentrate on what I am doing.",
			"I can tolerate emotional pain.",
			"I can accept things I cannot change.",
			"I can usually describe how I feel at the moment in considerable detail.",
			"It's easy for me to keep track of my thoughts and feelings.",
			"I try to notice my thoughts without judging them.",
			"I am able to accept the thoughts and feelings I have.",
			"I am able to focus on the present moment.",
			"I am able to pay close attention to one thing for a long period of time.",
			"I've been feeling optimistic about the future.",
			"I've been feeling useful.",
			"I've been feeling relaxed.",
			"I've been dealing with problems well.",
			"I've been thinking clearly.",
			"I've been feeling close to other people.",
			"I've been able to make up my own mind about things.",
		},
	},
	{
		ID:          "p5",
		Title:       "P5. Internet usage frequency",
		Description: "Internet usage frequency highlights how Gen Z stays plugged in. Please indicate how often these statements describe your online behavior.",
		Questions: []string{
			"I spend time online when I'd rather sleep.",
			"I feel tense, irritated, or stressed if I cannot use the Internet as long as I want to.",
			"I wish to decrease the amount of time spent online but do not succeed.",
			"I try to conceal the amount of time spent online.",
			"People in my life complain about me spending too much time online.",
			"I feel depressed, moody, or nervous when I am not online, and these feelings stop once I am back online.",
		},
	},
	{
		ID:          "p6",
		Title:       "P6. Discussion and sharing behavior about personalized feeds",
		Description: "Discussion and sharing behavior show how teens turn algorithms into conversation starters. Please indicate how much you agree or disagree with the following statements about how you discuss and share your personalized recommendations (e.g., TikTok videos, Instagram Reels, YouTube Shorts) with friends.",
		Questions: []string{
			"The videos/posts recommended to me usually match my interests.",
			"My recommended feed helps me discover new and useful information.",
			"I feel bored when the recommendations become repetitive.",
			"I believe my recommended feed improves my overall social media experience.",
			"I often share recommended videos/posts with my friends.",
			"My friends and I often discuss the content we see on our feeds.",
			"We compare how similar or different our feeds are.",
			"Sharing personalized content helps me connect with others.",
			"I sometimes feel pressure to share content that is trending on my feed.",
		},
	},
}

var defaultCatalog = New(defaultSections)

// Default returns the production questionnaire catalog.
func Default() *Catalog {
	return defaultCatalog
}
