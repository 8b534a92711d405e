package riot

// Account is the account-v1 resolution of a GameName#TagLine handle
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Match is the match-v5 detail payload, trimmed to the fields we consume
type Match struct {
	Metadata Metadata `json:"metadata"`
	Info     Info     `json:"info"`
}

// Metadata carries the match id and participant puuids
type Metadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// Info is the per-match body: timing, version, and the ten participants
type Info struct {
	GameDuration       int64         `json:"gameDuration"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameVersion        string        `json:"gameVersion"`
	QueueID            int           `json:"queueId"`
	Participants       []Participant `json:"participants"`
}

// Participant is one player's slice of a match
type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Role         string `json:"role"`
	Lane         string `json:"lane"`
	TeamPosition string `json:"teamPosition"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	GoldEarned                  int `json:"goldEarned"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	VisionScore                 int `json:"visionScore"`
	DamageDealtToObjectives     int `json:"damageDealtToObjectives"`
	DamageDealtToTurrets        int `json:"damageDealtToTurrets"`

	FirstBloodKill      bool `json:"firstBloodKill"`
	FirstTowerKill      bool `json:"firstTowerKill"`
	LargestKillingSpree int  `json:"largestKillingSpree"`
	WardsPlaced         int  `json:"wardsPlaced"`
	WardsKilled         int  `json:"wardsKilled"`

	Win bool `json:"win"`
}

// LeagueEntry is one ranked queue standing for a player
type LeagueEntry struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}
