package enhance

// SystemPrompt is the shared instruction set for real providers. The same
// honesty constraints apply to every section: rewrite, never invent.
const SystemPrompt = `You are an expert resume writer with a strict commitment to honesty and accuracy. Your core principles are:

- NEVER invent, exaggerate, or misattribute any skills or experiences
- Every piece of information must be directly traceable to the source text
- Improve wording, structure, and impact without changing the facts
- Respond with the rewritten text only, no preamble or commentary`

// sectionPrompts are the per-section user prompt templates. The placeholder
// %s receives the field content.
var sectionPrompts = map[string]string{
	SectionSummary: `Rewrite this professional summary to be more compelling. Keep it to one short paragraph and preserve every factual claim:

%s`,

	SectionExperience: `Rewrite this work experience description. Start each line with a strong action verb and keep all facts intact:

%s`,

	SectionSkills: `Rewrite this skills list with professional phrasing, one skill per line. Do not add skills that are not listed:

%s`,

	SectionEducation: `Rewrite this education description with professional phrasing. Preserve every institution, degree, and date exactly:

%s`,
}

// defaultPrompt covers sections without a dedicated template.
const defaultPrompt = `Rewrite this resume text with professional phrasing, preserving every factual claim:

%s`

func promptFor(section string) string {
	if p, ok := sectionPrompts[section]; ok {
		return p
	}
	return defaultPrompt
}
