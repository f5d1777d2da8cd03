package hqlfmt

import (
	"strings"
	"testing"
)

func TestFormatCanonicalCapitalization(t *testing.T) {
	input := "query GetUserById(id: id) =>\nuser <- n<User>(id)\nreturn user"
	want := `QUERY GetUserById(id: ID) =>
    user <- N<User>(id)
    RETURN user`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatKeywordsInSteps(t *testing.T) {
	input := "QUERY Adults() =>\nresult <- N<User>\n::where(_::{age}::gt(21))\nRETURN result"
	want := `QUERY Adults() =>
    result <- N<User>
        ::WHERE(_::{age}::GT(21))
    RETURN result`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatStringLiteralsUntouched(t *testing.T) {
	input := "QUERY Tag() =>\nRETURN \"where query count\""
	want := `QUERY Tag() =>
    RETURN "where query count"`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatUserIdentifiersKeepCase(t *testing.T) {
	// A variable that spells a step name in lowercase is not a vocabulary
	// position and must survive.
	input := "QUERY C() =>\ncount <- N<User>\n::count\nRETURN count"
	got := Format(input)
	if !strings.Contains(got, "count <- N<User>") {
		t.Errorf("variable name was rewritten:\n%s", got)
	}
	if !strings.Contains(got, "::COUNT") {
		t.Errorf("step was not canonicalized:\n%s", got)
	}
	if !strings.Contains(got, "RETURN count") {
		t.Errorf("returned variable was rewritten:\n%s", got)
	}
}

func TestFormatSplitsLongChains(t *testing.T) {
	input := "QUERY Adults() =>\nresult <- N<User>::WHERE(_::{age}::GT(21))::ORDER<Asc>(_::{age})::RANGE(0, 10)\nRETURN result"
	want := `QUERY Adults() =>
    result <- N<User>
        ::WHERE(_::{age}::GT(21))
        ::ORDER<Asc>(_::{age})
        ::RANGE(0, 10)
    RETURN result`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatKeepsShortChainsInline(t *testing.T) {
	input := "QUERY C() =>\ntotal <- N<User>::COUNT\nRETURN total"
	want := `QUERY C() =>
    total <- N<User>::COUNT
    RETURN total`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatExpandsInlineProjections(t *testing.T) {
	input := "QUERY CreateUser(email: String, age: I32) =>\nuser <- AddN<User>({email: email, age: age})\nRETURN user"
	want := `QUERY CreateUser(email: String, age: I32) =>
    user <- AddN<User>({
        email: email,
        age: age
    })
    RETURN user`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatPropertyBracesStayInline(t *testing.T) {
	// _::{name} is property access, not a projection.
	input := "QUERY F(val: String) =>\nuser <- N<User>\n::WHERE(_::{email}::EQ(val))\nRETURN user"
	got := Format(input)
	if !strings.Contains(got, "::WHERE(_::{email}::EQ(val))") {
		t.Errorf("property access was rewritten:\n%s", got)
	}
}

func TestFormatSchemaBlocks(t *testing.T) {
	input := "n::user {\nunique index email: string\nage: i32\n}\n\n\ne::follows {\nFrom: user,\nTo: user,\nProperties: {}\n}"
	want := `N::user {
    UNIQUE INDEX email: String
    age: I32
}

E::follows {
    From: user,
    To: user,
    Properties: {}
}`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatCollapsesBlankLines(t *testing.T) {
	input := "\n\nQUERY A() =>\nRETURN 1\n\n\n\nQUERY B() =>\nRETURN 2\n\n"
	want := `QUERY A() =>
    RETURN 1

QUERY B() =>
    RETURN 2`
	if got := Format(input); got != want {
		t.Errorf("format mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"query GetUserById(id: id) =>\nuser <- n<User>(id)\nreturn user",
		"QUERY Adults() =>\nresult <- N<User>::WHERE(_::{age}::GT(21))::ORDER<Asc>(_::{age})::RANGE(0, 10)\nRETURN result",
		"QUERY CreateUser(email: String) =>\nuser <- AddN<User>({email: email, age: age})\nRETURN user",
		"n::user {\nunique index email: string\n}",
		"QUERY GetUserRichDetail(id: ID) =>\nuser <- N<User>(id)\nRETURN user::{\nemail: _::{email},\nfollows_count: _::OutE<Follows>::COUNT\n}",
	}
	for _, input := range inputs {
		once := Format(input)
		if twice := Format(once); twice != once {
			t.Errorf("not idempotent:\nfirst:\n%s\nsecond:\n%s", once, twice)
		}
	}
}

func TestFormatBestEffortPassThrough(t *testing.T) {
	// Content the formatter does not understand survives.
	input := "some random text"
	if got := Format(input); got != "some random text" {
		t.Errorf("Format(%q) = %q", input, got)
	}
	if got := Format(""); got != "" {
		t.Errorf("Format(\"\") = %q", got)
	}
}
