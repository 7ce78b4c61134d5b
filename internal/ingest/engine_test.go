package ingest_test

import (
	"reflect"
	"testing"

	"bilingo/internal/ingest"
	"bilingo/internal/language"
	"bilingo/internal/subtitles"
)

const englishSRT = `1
00:00:01,000 --> 00:00:02,500
Hello there

2
00:00:03,000 --> 00:00:04,000
How are you
`

const englishSRTAlt = `1
00:00:10,000 --> 00:00:12,000
Different take
`

const chineseSRT = `1
00:00:01,000 --> 00:00:02,500
你好

2
00:00:03,000 --> 00:00:04,000
你好吗
`

const bilingualSRT = `1
00:00:01,000 --> 00:00:02,500
你好
Hello there

2
00:00:03,000 --> 00:00:04,000
你好吗
How are you
`

const bilingualASS = `[Script Info]
Title: test

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.50,Default,,0,0,0,,{\b1}你好\NHello, there
Dialogue: 0,0:00:03.00,0:00:04.00,Default,,0,0,0,,你好吗\NHow are you
`

func srtFile(name, text string) ingest.SubtitleFile {
	return ingest.SubtitleFile{Name: name, Text: text}
}

func texts(cues []subtitles.Cue) []string {
	out := make([]string, len(cues))
	for i, cue := range cues {
		out[i] = cue.Text
	}
	return out
}

func TestIngestFreshMonolingual(t *testing.T) {
	engine := ingest.NewEngine()

	tests := []struct {
		name        string
		file        ingest.SubtitleFile
		detected    language.Verdict
		missing     ingest.Missing
		wantChinese []string
		wantEnglish []string
	}{
		{"english", srtFile("movie.en.srt", englishSRT), language.English, ingest.MissingChinese, []string{}, []string{"Hello there", "How are you"}},
		{"chinese", srtFile("movie.zh.srt", chineseSRT), language.Chinese, ingest.MissingEnglish, []string{"你好", "你好吗"}, []string{}},
		{"bilingual", srtFile("movie.srt", bilingualSRT), language.Bilingual, ingest.MissingNone, []string{"你好", "你好吗"}, []string{"Hello there", "How are you"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := engine.Ingest(nil, tt.file)
			if set.Detected != tt.detected {
				t.Fatalf("detected = %q, want %q", set.Detected, tt.detected)
			}
			if set.Missing != tt.missing {
				t.Fatalf("missing = %q, want %q", set.Missing, tt.missing)
			}
			if got := texts(set.Chinese); !reflect.DeepEqual(got, tt.wantChinese) {
				t.Fatalf("chinese = %q, want %q", got, tt.wantChinese)
			}
			if got := texts(set.English); !reflect.DeepEqual(got, tt.wantEnglish) {
				t.Fatalf("english = %q, want %q", got, tt.wantEnglish)
			}
			if len(set.Raw) != 2 {
				t.Fatalf("raw = %d cues, want 2", len(set.Raw))
			}
		})
	}
}

func TestIngestEnglishThenChineseMerges(t *testing.T) {
	engine := ingest.NewEngine()

	first := engine.Ingest(nil, srtFile("movie.en.srt", englishSRT))
	if first.Missing != ingest.MissingChinese {
		t.Fatalf("missing after english = %q", first.Missing)
	}
	englishBefore := subtitles.Clone(first.English)

	outcome := engine.Apply(&first, srtFile("movie.zh.srt", chineseSRT))
	merged := outcome.Tracks
	if outcome.Mode != ingest.ModeMerge {
		t.Fatalf("mode = %q, want merge", outcome.Mode)
	}
	if merged.Missing != ingest.MissingNone {
		t.Fatalf("missing = %q, want none", merged.Missing)
	}
	if merged.Detected != language.Bilingual {
		t.Fatalf("detected = %q, want bilingual", merged.Detected)
	}
	if !reflect.DeepEqual(merged.English, englishBefore) {
		t.Fatalf("english track changed: %+v", merged.English)
	}
	want := subtitles.ParseSRT(chineseSRT)
	if !reflect.DeepEqual(merged.Chinese, want) {
		t.Fatalf("chinese = %+v, want %+v", merged.Chinese, want)
	}
	if len(merged.Raw) != 4 {
		t.Fatalf("raw should be appended, got %d cues", len(merged.Raw))
	}
	if merged.Raw[0].Text != "Hello there" || merged.Raw[2].Text != "你好" {
		t.Fatalf("raw order = %q", texts(merged.Raw))
	}
}

func TestIngestSameLanguageReplaces(t *testing.T) {
	engine := ingest.NewEngine()

	first := engine.Ingest(nil, srtFile("a.en.srt", englishSRT))
	outcome := engine.Apply(&first, srtFile("b.en.srt", englishSRTAlt))
	second := outcome.Tracks

	if outcome.Mode != ingest.ModeReplace {
		t.Fatalf("mode = %q, want replace", outcome.Mode)
	}
	if second.Missing != ingest.MissingChinese {
		t.Fatalf("missing = %q, want chinese", second.Missing)
	}
	if got := texts(second.English); !reflect.DeepEqual(got, []string{"Different take"}) {
		t.Fatalf("english should be replaced, got %q", got)
	}
	if len(second.Raw) != 1 {
		t.Fatalf("raw should not accumulate, got %d", len(second.Raw))
	}
}

func TestIngestChineseThenBilingualTakesEnglishHalf(t *testing.T) {
	engine := ingest.NewEngine()

	first := engine.Ingest(nil, srtFile("movie.zh.srt", chineseSRT))
	merged := engine.Ingest(&first, srtFile("movie.ass", bilingualASS))

	if merged.Missing != ingest.MissingNone || merged.Detected != language.Bilingual {
		t.Fatalf("unexpected state: missing=%q detected=%q", merged.Missing, merged.Detected)
	}
	if got := texts(merged.Chinese); !reflect.DeepEqual(got, []string{"你好", "你好吗"}) {
		t.Fatalf("chinese track must keep the first upload, got %q", got)
	}
	if got := texts(merged.English); !reflect.DeepEqual(got, []string{"Hello, there", "How are you"}) {
		t.Fatalf("english = %q", got)
	}
}

func TestIngestCompleteSetIsFreshUpload(t *testing.T) {
	engine := ingest.NewEngine()

	complete := engine.Ingest(nil, srtFile("movie.srt", bilingualSRT))
	outcome := engine.Apply(&complete, srtFile("movie.en.srt", englishSRTAlt))

	if outcome.Mode != ingest.ModeFresh {
		t.Fatalf("mode = %q, want fresh", outcome.Mode)
	}
	if outcome.Tracks.Missing != ingest.MissingChinese || len(outcome.Tracks.Chinese) != 0 {
		t.Fatalf("expected fresh english-only set, got %+v", outcome.Tracks)
	}
}

func TestIngestDoesNotMutatePrior(t *testing.T) {
	engine := ingest.NewEngine()

	first := engine.Ingest(nil, srtFile("movie.en.srt", englishSRT))
	snapshot := first.Clone()
	_ = engine.Ingest(&first, srtFile("movie.zh.srt", chineseSRT))

	if !reflect.DeepEqual(first, snapshot) {
		t.Fatalf("prior set mutated:\n got %+v\nwant %+v", first, snapshot)
	}
}

func TestIngestBilingualIdempotent(t *testing.T) {
	engine := ingest.NewEngine()
	want := engine.Ingest(nil, srtFile("movie.srt", bilingualSRT))
	for i := 0; i < 3; i++ {
		got := engine.Ingest(nil, srtFile("movie.srt", bilingualSRT))
		if !reflect.DeepEqual(got.Chinese, want.Chinese) || !reflect.DeepEqual(got.English, want.English) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestIngestUnknownFreshSeparatesAnyway(t *testing.T) {
	engine := ingest.NewEngine()

	tests := []struct {
		name    string
		text    string
		missing ingest.Missing
		chinese int
		english int
	}{
		{"empty file", "", ingest.MissingChinese, 0, 0},
		{"digits only", "1\n00:00:01,000 --> 00:00:02,000\n1234\n", ingest.MissingChinese, 0, 1},
		{
			"weak signal in both scripts",
			"1\n00:00:01,000 --> 00:00:02,000\n你好\n\n2\n00:00:03,000 --> 00:00:04,000\nHello\n\n" +
				"3\n00:00:05,000 --> 00:00:06,000\n42\n\n4\n00:00:07,000 --> 00:00:08,000\n...\n",
			ingest.MissingNone, 1, 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := engine.Ingest(nil, srtFile("x.srt", tt.text))
			if set.Missing != tt.missing {
				t.Fatalf("missing = %q, want %q", set.Missing, tt.missing)
			}
			if len(set.Chinese) != tt.chinese || len(set.English) != tt.english {
				t.Fatalf("tracks = %d/%d, want %d/%d", len(set.Chinese), len(set.English), tt.chinese, tt.english)
			}
		})
	}
}

func TestIngestUnknownAgainstPartialStartsFresh(t *testing.T) {
	engine := ingest.NewEngine()

	first := engine.Ingest(nil, srtFile("movie.en.srt", englishSRT))
	outcome := engine.Apply(&first, srtFile("noise.srt", "1\n00:00:01,000 --> 00:00:02,000\n1234\n"))
	if outcome.Mode != ingest.ModeFresh {
		t.Fatalf("mode = %q, want fresh", outcome.Mode)
	}
	if outcome.Classification.Verdict != language.Unknown {
		t.Fatalf("verdict = %q", outcome.Classification.Verdict)
	}
}

type fixedClassifier struct{ verdict language.Verdict }

func (f fixedClassifier) Classify(cues []subtitles.Cue) language.Result {
	return language.Result{Verdict: f.verdict, Stats: language.Stats{Total: len(cues)}}
}

func TestEngineUsesInjectedClassifier(t *testing.T) {
	engine := ingest.NewEngine(ingest.WithClassifier(fixedClassifier{verdict: language.Chinese}))
	set := engine.Ingest(nil, srtFile("movie.en.srt", englishSRT))
	if set.Detected != language.Chinese || set.Missing != ingest.MissingEnglish {
		t.Fatalf("classifier not used: %+v", set)
	}
}

func TestParseDispatchesByExtension(t *testing.T) {
	engine := ingest.NewEngine()
	if got := engine.Parse(srtFile("MOVIE.ASS", bilingualASS)); len(got) != 2 {
		t.Fatalf("ASS parse returned %d cues", len(got))
	}
	if got := engine.Parse(srtFile("movie.srt", bilingualASS)); len(got) != 0 {
		t.Fatalf("SRT parser should reject ASS text, got %d cues", len(got))
	}
}

func TestBundleReady(t *testing.T) {
	partial := ingest.TrackSet{Missing: ingest.MissingChinese}
	complete := ingest.TrackSet{}
	video := &ingest.MediaReference{Name: "movie.mkv"}

	tests := []struct {
		name   string
		bundle ingest.Bundle
		want   bool
	}{
		{"empty", ingest.Bundle{}, false},
		{"video only", ingest.Bundle{Video: video}, false},
		{"partial", ingest.Bundle{Video: video, Tracks: &partial}, false},
		{"subtitles only", ingest.Bundle{Tracks: &complete}, false},
		{"ready", ingest.Bundle{Video: video, Tracks: &complete}, true},
	}
	for _, tt := range tests {
		if got := tt.bundle.Ready(); got != tt.want {
			t.Fatalf("%s: Ready() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
