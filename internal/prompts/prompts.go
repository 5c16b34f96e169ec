// Package prompts builds the fully-specified instruction text handed to the
// text-generation provider. Every template enumerates the structure the model
// is asked to return; nothing here validates that the returned text follows
// it.
package prompts

import "fmt"

// Story artifact kinds understood by Build. Kept as plain strings so the
// artifact layer can define its own enum on top without a dependency cycle.
const (
	KindScreenplay      = "screenplay"
	KindCharacters      = "characters"
	KindSoundDesign     = "sound_design"
	KindScriptBreakdown = "script_breakdown"
	KindShotList        = "shot_list"
)

// imagePromptClosing is the fixed style directive appended to every generated
// image prompt.
const imagePromptClosing = "ultra realistic, 4K, high detail, film still, cinematic photography, anamorphic lens flare"

// Build returns the instruction for one artifact kind. It is pure and total
// for any story text; the only error is an unknown kind, which is a wiring
// bug rather than bad user input.
func Build(kind, story string) (string, error) {
	switch kind {
	case KindScreenplay:
		return screenplayPrompt(story), nil
	case KindCharacters:
		return charactersPrompt(story), nil
	case KindSoundDesign:
		return soundDesignPrompt(story), nil
	case KindScriptBreakdown:
		return scriptBreakdownPrompt(story), nil
	case KindShotList:
		return shotListPrompt(story), nil
	}
	return "", fmt.Errorf("prompts: unknown artifact kind %q", kind)
}

// BuildImagePrompt returns the instruction that turns a shot description into
// a cinematic image-generation prompt. The template demands the prompt text
// alone, with no conversational wrapper, and ends with a fixed style
// directive.
func BuildImagePrompt(shotDescription string) string {
	return fmt.Sprintf(`You are a professional Hollywood cinematographer and AI prompt engineer.

Your task: Convert the following shot description into a highly detailed, cinematic AI image generation prompt.

Include ALL of these elements:
- Shot type (close-up, wide shot, aerial, extreme close-up, over-the-shoulder, etc.)
- Subject details (age, appearance, clothing, expression, body language)
- Action happening in the frame
- Environment/location with rich atmospheric detail
- Time of day (golden hour, blue hour, midnight, noon, etc.)
- Lighting style (Rembrandt, softbox, motivated practical, neon, candlelight, etc.)
- Camera angle (low angle, bird's eye, dutch tilt, eye level, etc.)
- Lens type and effect (24mm wide-angle, 35mm, 50mm standard, 85mm portrait bokeh, 135mm telephoto compression)
- Mood and emotion (tense, melancholic, euphoric, foreboding, romantic, etc.)
- Cinematic style reference (e.g., Blade Runner 2049, No Country for Old Men, La La Land, etc.)
- Color grading style (desaturated teal-orange, warm analog, cool monochrome, vivid Kodak)

End the prompt with: %s

SHOT DESCRIPTION:
%s

Output ONLY the final image prompt. No explanation, no preamble, no labels. Just the prompt itself.`, imagePromptClosing, shotDescription)
}

func screenplayPrompt(story string) string {
	return fmt.Sprintf(`You are a professional Hollywood screenwriter. Write a complete, industry-standard screenplay based on the following story idea.

STRICT FORMATTING RULES:
- Scene headings MUST be in ALL CAPS (e.g., INT. COFFEE SHOP - DAY)
- Character names before dialogue MUST be in ALL CAPS and centered
- Action lines in present tense, concise
- Include at least 3 scenes with dialogue
- Use proper screenplay structure: Setup, Confrontation, Resolution

STORY IDEA:
%s

Write the full screenplay now:`, story)
}

func charactersPrompt(story string) string {
	return fmt.Sprintf(`You are a professional character designer and casting director. Based on the story below, create detailed character profiles for all major and supporting characters.

For EACH character provide:
- NAME (in ALL CAPS)
- AGE & PHYSICAL DESCRIPTION
- PERSONALITY TRAITS (3-5 bullet points)
- BACKSTORY (2-3 sentences)
- ROLE IN STORY
- SUGGESTED CASTING TYPE (e.g., "Mid-30s rugged male lead")
- CHARACTER ARC (how they change by the end)

STORY:
%s

Generate all character profiles now:`, story)
}

func soundDesignPrompt(story string) string {
	return fmt.Sprintf(`You are an award-winning sound designer and composer. Create a comprehensive sound design plan for the following story.

Include:
1. OVERALL SONIC PALETTE (describe the emotional tone and audio world)
2. SCENE-BY-SCENE SOUND MAP:
   - Ambient sounds / room tone
   - Key sound effects (SFX)
   - Music cues (genre, tempo, instrumentation)
3. LEITMOTIFS: Recurring musical themes for main characters/concepts
4. SILENCE USAGE: Where silence is used for dramatic effect
5. TECHNICAL NOTES: Recommended recording techniques or sound libraries

STORY:
%s

Create the full sound design plan now:`, story)
}

func scriptBreakdownPrompt(story string) string {
	return fmt.Sprintf(`You are an experienced film production coordinator. Create a detailed script breakdown from the following story.

For EACH SCENE provide a breakdown table with:
- SCENE NUMBER & HEADING (INT/EXT, LOCATION, TIME)
- CAST REQUIREMENTS: Named characters appearing in scene
- PROPS: All physical objects needed
- LOCATIONS: Specific set or location requirements
- WARDROBE: Key costume notes
- SPECIAL REQUIREMENTS: Stunts, VFX, special equipment
- ESTIMATED SHOOT TIME: (in hours)

Also include at the end:
- TOTAL CAST LIST (all unique characters)
- MASTER PROPS LIST (all unique props)
- UNIQUE LOCATIONS LIST

STORY:
%s

Generate the complete script breakdown now:`, story)
}

func shotListPrompt(story string) string {
	return fmt.Sprintf(`You are a cinematographer and director of photography (DP). Create a professional shot list for the following story.

For EACH SHOT provide:
- SHOT NUMBER
- SCENE REFERENCE
- SHOT TYPE: (e.g., ECU - Extreme Close Up, CU, MS, WS, EWS)
- CAMERA ANGLE: (e.g., Low Angle, High Angle, Bird's Eye, Dutch Tilt, Eye Level)
- CAMERA MOVEMENT: (e.g., Static, Pan, Tilt, Dolly, Handheld, Steadicam, Crane)
- LENS SUGGESTION: (e.g., 24mm wide, 35mm standard, 50mm normal, 85mm portrait, 135mm telephoto)
- LIGHTING MOOD: (e.g., Noir - high contrast, High-key - bright/flat, Golden Hour, Practical only, Motivated)
- DESCRIPTION: What the shot shows and its emotional purpose
- ESTIMATED DURATION: (in seconds)

STORY:
%s

Generate the complete professional shot list now:`, story)
}
