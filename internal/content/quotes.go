package content

// quoteCatalog is the fixed quote table. Both its order and its length feed
// the rotation, so any edit changes which quote a vendor sees on a given day.
var quoteCatalog = [...]Quote{
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney", Title: "Co-founder, The Walt Disney Company"},
	{Text: "Your most unhappy customers are your greatest source of learning.", Author: "Bill Gates", Title: "Co-founder, Microsoft"},
	{Text: "If you do build a great experience, customers tell each other about that.", Author: "Jeff Bezos", Title: "Founder, Amazon"},
	{Text: "Chase the vision, not the money; the money will end up following you.", Author: "Tony Hsieh", Title: "CEO, Zappos"},
	{Text: "The best way to predict the future is to create it.", Author: "Peter Drucker", Title: "Management Consultant"},
	{Text: "Quality is not an act, it is a habit.", Author: "Aristotle", Title: "Philosopher"},
	{Text: "Price is what you pay. Value is what you get.", Author: "Warren Buffett", Title: "Chairman, Berkshire Hathaway"},
	{Text: "Do what you do so well that they will want to see it again and bring their friends.", Author: "Walt Disney", Title: "Co-founder, The Walt Disney Company"},
	{Text: "The customer's perception is your reality.", Author: "Kate Zabriskie", Title: "Customer Service Trainer"},
	{Text: "Opportunities don't happen. You create them.", Author: "Chris Grosser", Title: "Photographer and Entrepreneur"},
	{Text: "Success usually comes to those who are too busy to be looking for it.", Author: "Henry David Thoreau", Title: "Writer and Naturalist"},
	{Text: "Don't be afraid to give up the good to go for the great.", Author: "John D. Rockefeller", Title: "Founder, Standard Oil"},
	{Text: "I find that the harder I work, the more luck I seem to have.", Author: "Thomas Jefferson", Title: "Third U.S. President"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain", Title: "Author"},
	{Text: "It's not about ideas. It's about making ideas happen.", Author: "Scott Belsky", Title: "Co-founder, Behance"},
	{Text: "A satisfied customer is the best business strategy of all.", Author: "Michael LeBoeuf", Title: "Business Author"},
	{Text: "Make every detail perfect and limit the number of details to perfect.", Author: "Jack Dorsey", Title: "Co-founder, Twitter"},
	{Text: "The only place where success comes before work is in the dictionary.", Author: "Vidal Sassoon", Title: "Hairstylist and Entrepreneur"},
	{Text: "Well done is better than well said.", Author: "Benjamin Franklin", Title: "Founding Father"},
	{Text: "An investment in knowledge pays the best interest.", Author: "Benjamin Franklin", Title: "Founding Father"},
	{Text: "Beware of little expenses. A small leak will sink a great ship.", Author: "Benjamin Franklin", Title: "Founding Father"},
	{Text: "Rule number one: never lose money. Rule number two: never forget rule number one.", Author: "Warren Buffett", Title: "Chairman, Berkshire Hathaway"},
	{Text: "It takes 20 years to build a reputation and five minutes to ruin it.", Author: "Warren Buffett", Title: "Chairman, Berkshire Hathaway"},
	{Text: "Risk comes from not knowing what you're doing.", Author: "Warren Buffett", Title: "Chairman, Berkshire Hathaway"},
	{Text: "The biggest risk is not taking any risk.", Author: "Mark Zuckerberg", Title: "Founder, Meta"},
	{Text: "Move fast. Speed is one of your main advantages over large companies.", Author: "Sam Altman", Title: "Entrepreneur and Investor"},
	{Text: "If you are not embarrassed by the first version of your product, you've launched too late.", Author: "Reid Hoffman", Title: "Co-founder, LinkedIn"},
	{Text: "Your brand is what other people say about you when you're not in the room.", Author: "Jeff Bezos", Title: "Founder, Amazon"},
	{Text: "We see our customers as invited guests to a party, and we are the hosts.", Author: "Jeff Bezos", Title: "Founder, Amazon"},
	{Text: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs", Title: "Co-founder, Apple"},
	{Text: "Stay hungry, stay foolish.", Author: "Steve Jobs", Title: "Co-founder, Apple"},
	{Text: "Get closer than ever to your customers.", Author: "Steve Jobs", Title: "Co-founder, Apple"},
	{Text: "The customer is always right in matters of taste.", Author: "Harry Gordon Selfridge", Title: "Founder, Selfridges"},
	{Text: "There is only one boss. The customer.", Author: "Sam Walton", Title: "Founder, Walmart"},
	{Text: "High expectations are the key to everything.", Author: "Sam Walton", Title: "Founder, Walmart"},
	{Text: "Exceed your customer's expectations.", Author: "Sam Walton", Title: "Founder, Walmart"},
	{Text: "Take care of your employees and they will take care of your customers.", Author: "J. W. Marriott", Title: "Founder, Marriott International"},
	{Text: "Hospitality is present when something happens for you. It is absent when something happens to you.", Author: "Danny Meyer", Title: "Founder, Union Square Hospitality Group"},
	{Text: "Travel is the only thing you buy that makes you richer.", Author: "Anonymous", Title: "Traveler's proverb"},
	{Text: "The world is a book and those who do not travel read only one page.", Author: "Augustine of Hippo", Title: "Theologian"},
	{Text: "Not all those who wander are lost.", Author: "J. R. R. Tolkien", Title: "Author"},
	{Text: "A journey of a thousand miles begins with a single step.", Author: "Lao Tzu", Title: "Philosopher"},
	{Text: "Travel makes one modest. You see what a tiny place you occupy in the world.", Author: "Gustave Flaubert", Title: "Novelist"},
	{Text: "To travel is to live.", Author: "Hans Christian Andersen", Title: "Author"},
	{Text: "Adventure is worthwhile in itself.", Author: "Amelia Earhart", Title: "Aviator"},
	{Text: "The real voyage of discovery consists not in seeking new landscapes, but in having new eyes.", Author: "Marcel Proust", Title: "Novelist"},
	{Text: "Jobs fill your pocket, but adventures fill your soul.", Author: "Jaime Lyn Beatty", Title: "Writer"},
	{Text: "Once a year, go someplace you've never been before.", Author: "Dalai Lama", Title: "Spiritual Leader"},
	{Text: "Whatever you do, do it well.", Author: "Walt Disney", Title: "Co-founder, The Walt Disney Company"},
	{Text: "Don't find customers for your products, find products for your customers.", Author: "Seth Godin", Title: "Marketing Author"},
	{Text: "People do not buy goods and services. They buy relations, stories and magic.", Author: "Seth Godin", Title: "Marketing Author"},
	{Text: "Marketing is no longer about the stuff you make, but about the stories you tell.", Author: "Seth Godin", Title: "Marketing Author"},
	{Text: "Good service is good business.", Author: "Siebel Systems", Title: "Advertising slogan"},
	{Text: "Customer service shouldn't just be a department, it should be the entire company.", Author: "Tony Hsieh", Title: "CEO, Zappos"},
	{Text: "Loyal customers don't just come back, they recommend you to others.", Author: "Chip Bell", Title: "Customer Loyalty Consultant"},
	{Text: "Every contact we have with a customer influences whether or not they'll come back.", Author: "Kevin Stirtz", Title: "Marketing Author"},
	{Text: "The goal as a company is to have customer service that is not just the best, but legendary.", Author: "Sam Walton", Title: "Founder, Walmart"},
	{Text: "Revenue is vanity, profit is sanity, but cash is king.", Author: "Alan Miltz", Title: "Financial Strategist"},
	{Text: "Never spend your money before you have it.", Author: "Thomas Jefferson", Title: "Third U.S. President"},
	{Text: "Do not save what is left after spending, but spend what is left after saving.", Author: "Warren Buffett", Title: "Chairman, Berkshire Hathaway"},
	{Text: "A budget is telling your money where to go instead of wondering where it went.", Author: "Dave Ramsey", Title: "Personal Finance Author"},
	{Text: "Happiness is not in the mere possession of money; it lies in the joy of achievement.", Author: "Franklin D. Roosevelt", Title: "32nd U.S. President"},
	{Text: "Formal education will make you a living; self-education will make you a fortune.", Author: "Jim Rohn", Title: "Entrepreneur and Speaker"},
	{Text: "Discipline is the bridge between goals and accomplishment.", Author: "Jim Rohn", Title: "Entrepreneur and Speaker"},
	{Text: "Either you run the day or the day runs you.", Author: "Jim Rohn", Title: "Entrepreneur and Speaker"},
	{Text: "Success is walking from failure to failure with no loss of enthusiasm.", Author: "Winston Churchill", Title: "British Prime Minister"},
	{Text: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill", Title: "British Prime Minister"},
	{Text: "I have not failed. I've just found 10,000 ways that won't work.", Author: "Thomas Edison", Title: "Inventor"},
	{Text: "Opportunity is missed by most people because it is dressed in overalls and looks like work.", Author: "Thomas Edison", Title: "Inventor"},
	{Text: "Whether you think you can or you think you can't, you're right.", Author: "Henry Ford", Title: "Founder, Ford Motor Company"},
	{Text: "Coming together is a beginning, staying together is progress, and working together is success.", Author: "Henry Ford", Title: "Founder, Ford Motor Company"},
	{Text: "Quality means doing it right when no one is looking.", Author: "Henry Ford", Title: "Founder, Ford Motor Company"},
	{Text: "If everyone is moving forward together, then success takes care of itself.", Author: "Henry Ford", Title: "Founder, Ford Motor Company"},
	{Text: "The man who moves a mountain begins by carrying away small stones.", Author: "Confucius", Title: "Philosopher"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius", Title: "Philosopher"},
	{Text: "Choose a job you love, and you will never have to work a day in your life.", Author: "Confucius", Title: "Philosopher"},
	{Text: "In the middle of every difficulty lies opportunity.", Author: "Albert Einstein", Title: "Physicist"},
	{Text: "Try not to become a man of success, but rather try to become a man of value.", Author: "Albert Einstein", Title: "Physicist"},
	{Text: "Great things in business are never done by one person. They're done by a team of people.", Author: "Steve Jobs", Title: "Co-founder, Apple"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs", Title: "Co-founder, Apple"},
	{Text: "Some people dream of success, while other people get up every morning and make it happen.", Author: "Wayne Huizenga", Title: "Founder, AutoNation"},
	{Text: "Done is better than perfect.", Author: "Sheryl Sandberg", Title: "Former COO, Meta"},
	{Text: "What would you do if you weren't afraid?", Author: "Sheryl Sandberg", Title: "Former COO, Meta"},
	{Text: "Screw it, let's do it.", Author: "Richard Branson", Title: "Founder, Virgin Group"},
	{Text: "Clients do not come first. Employees come first. If you take care of your employees, they will take care of the clients.", Author: "Richard Branson", Title: "Founder, Virgin Group"},
	{Text: "Business opportunities are like buses, there's always another one coming.", Author: "Richard Branson", Title: "Founder, Virgin Group"},
	{Text: "You don't learn to walk by following rules. You learn by doing, and by falling over.", Author: "Richard Branson", Title: "Founder, Virgin Group"},
	{Text: "Build something 100 people love, not something 1 million people kind of like.", Author: "Brian Chesky", Title: "Co-founder, Airbnb"},
	{Text: "If we tried to think of a good idea, we wouldn't have been able to think of a good idea. You just have to find the solution for a problem in your own life.", Author: "Brian Chesky", Title: "Co-founder, Airbnb"},
	{Text: "Hosts are the heart of the experience.", Author: "Joe Gebbia", Title: "Co-founder, Airbnb"},
	{Text: "When you find an idea that you just can't stop thinking about, that's probably a good one to pursue.", Author: "Josh James", Title: "Founder, Omniture"},
	{Text: "Ideas are easy. Implementation is hard.", Author: "Guy Kawasaki", Title: "Marketing Specialist"},
	{Text: "Make meaning, not money.", Author: "Guy Kawasaki", Title: "Marketing Specialist"},
	{Text: "Timing, perseverance, and ten years of trying will eventually make you look like an overnight success.", Author: "Biz Stone", Title: "Co-founder, Twitter"},
	{Text: "The critical ingredient is getting off your butt and doing something.", Author: "Nolan Bushnell", Title: "Founder, Atari"},
	{Text: "Wonder what your customer really wants? Ask. Don't tell.", Author: "Lisa Stone", Title: "Co-founder, BlogHer"},
	{Text: "Always deliver more than expected.", Author: "Larry Page", Title: "Co-founder, Google"},
	{Text: "Focus on the user and all else will follow.", Author: "Google", Title: "Company philosophy"},
	{Text: "Word of mouth is the best medium of all.", Author: "William Bernbach", Title: "Advertising Executive"},
	{Text: "The aim of marketing is to know and understand the customer so well the product or service fits him and sells itself.", Author: "Peter Drucker", Title: "Management Consultant"},
	{Text: "What gets measured gets managed.", Author: "Peter Drucker", Title: "Management Consultant"},
	{Text: "Efficiency is doing things right; effectiveness is doing the right things.", Author: "Peter Drucker", Title: "Management Consultant"},
	{Text: "Plans are of little importance, but planning is essential.", Author: "Winston Churchill", Title: "British Prime Minister"},
	{Text: "By failing to prepare, you are preparing to fail.", Author: "Benjamin Franklin", Title: "Founding Father"},
	{Text: "Small deeds done are better than great deeds planned.", Author: "Peter Marshall", Title: "Chaplain, U.S. Senate"},
	{Text: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb", Title: "Traditional saying"},
	{Text: "If you can dream it, you can do it.", Author: "Tom Fitzgerald", Title: "Imagineer"},
	{Text: "Vision without execution is hallucination.", Author: "Thomas Edison", Title: "Inventor"},
	{Text: "Dream big. Start small. Act now.", Author: "Robin Sharma", Title: "Leadership Author"},
	{Text: "The secret of change is to focus all of your energy not on fighting the old, but on building the new.", Author: "Dan Millman", Title: "Author"},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James", Title: "Philosopher and Psychologist"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt", Title: "26th U.S. President"},
	{Text: "Do what you can, with what you have, where you are.", Author: "Theodore Roosevelt", Title: "26th U.S. President"},
	{Text: "Hard work beats talent when talent doesn't work hard.", Author: "Tim Notke", Title: "Basketball Coach"},
	{Text: "Great companies are built on great products.", Author: "Elon Musk", Title: "CEO, Tesla"},
	{Text: "Patience, persistence and perspiration make an unbeatable combination for success.", Author: "Napoleon Hill", Title: "Author"},
	{Text: "Do not wait to strike till the iron is hot, but make it hot by striking.", Author: "William Butler Yeats", Title: "Poet"},
	{Text: "A business that makes nothing but money is a poor business.", Author: "Henry Ford", Title: "Founder, Ford Motor Company"},
	{Text: "People will forget what you said, but people will never forget how you made them feel.", Author: "Maya Angelou", Title: "Poet"},
	{Text: "Be so good they can't ignore you.", Author: "Steve Martin", Title: "Entertainer"},
	{Text: "Keep your eyes on the stars, and your feet on the ground.", Author: "Theodore Roosevelt", Title: "26th U.S. President"},
	{Text: "Little by little, one travels far.", Author: "J. R. R. Tolkien", Title: "Author"},
}

// Quotes returns a copy of the quote catalog.
func Quotes() []Quote {
	quotes := make([]Quote, len(quoteCatalog))
	copy(quotes, quoteCatalog[:])
	return quotes
}

// QuoteAt returns the catalog entry at i. It panics when i is out of range.
func QuoteAt(i int) Quote {
	return quoteCatalog[i]
}

// QuoteCount is the size of the quote catalog.
func QuoteCount() int {
	return len(quoteCatalog)
}
