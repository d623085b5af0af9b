package scripts

import "github.com/verte-zerg/telecue/internal/model"

// Builtins returns the scripts bundled with telecue, in display order.
func Builtins() []model.Script {
	return []model.Script{
		{
			ID:            "1",
			Title:         "Introduction video",
			Description:   "Introduce yourself and present key points about your career.",
			Content:       builtin1Content,
			EstimatedTime: "1 min",
		},
		{
			ID:            "2",
			Title:         "Experience & Background",
			Description:   "Walk through your professional experience and key achievements.",
			Content:       builtin2Content,
			EstimatedTime: "5-7 min",
		},
		{
			ID:            "3",
			Title:         "Closing & Next Steps",
			Description:   "Wrap up the interview and discuss next steps.",
			Content:       builtin3Content,
			EstimatedTime: "2-3 min",
		},
	}
}

const builtin1Content = `Welcome! I'm excited to share a bit about myself and my professional journey with you.

My name is [Your Name], and I bring [X years] of experience in [Your Field/Industry]. Throughout my career, I've been passionate about [Key Interest/Specialty].

Here are the key highlights of my professional background:

• [Achievement/Experience 1] - This experience taught me [Key Learning]
• [Achievement/Experience 2] - Where I developed skills in [Relevant Skills]  
• [Achievement/Experience 3] - Leading to [Positive Outcome/Impact]

What drives me professionally is [Your Motivation/Values]. I'm particularly excited about opportunities that allow me to [Your Goals/Interests].

I'm looking forward to discussing how my background and enthusiasm can contribute to your team's success.

Thank you for your time and consideration!`

const builtin2Content = `Let me walk you through my professional journey and the experiences that have shaped my career.

I started my career in [Starting Role/Company] where I [Key Responsibility/Achievement]. This foundation taught me [Important Skills/Values].

Over the past [Time Period], I've progressed through roles that have expanded my expertise:

At [Company/Role], I:
• [Specific Achievement with measurable impact]
• [Key project or responsibility]
• [Skills developed or demonstrated]

My most significant professional achievement was [Major Achievement]. This experience was meaningful because [Why it mattered/Impact].

To stay current in my field, I:
• [Learning method 1 - courses, certifications, etc.]
• [Learning method 2 - industry involvement, networking]
• [Learning method 3 - personal projects, reading]

I perform best in environments that are [Work Environment Preferences] because [Reasoning].

This combination of experience, continuous learning, and self-awareness has prepared me to make a strong contribution to your organization.`

const builtin3Content = `As we wrap up our conversation today, I want to thank you for this opportunity to share my background and learn more about this role.

Before we conclude, I'd love to address any questions you might have:

• About my experience or qualifications
• Regarding my approach to [Relevant Work Area]
• Concerning how I would handle [Relevant Challenge/Situation]
• About my interest in this role and your organization

I'm also curious to learn more about:
• The team I'd be working with
• Key priorities for this role in the first 90 days
• Your company culture and growth opportunities
• What success looks like in this position

Is there anything else I should know about the role or your organization that would help me understand how I can best contribute?

I'm very excited about the possibility of joining your team and contributing to [Company/Team Goals]. 

Thank you again for your time and thoughtful questions. I look forward to hearing about the next steps in your process.

Have a wonderful rest of your day!`
