/*
Package mail parses, validates and renders message participants.

Three forms are understood:
  - an Address, "user@domain";
  - a Mailbox, "Name <user@domain>", "<user@domain>" or a bare address;
  - Mailboxes, a comma-separated list of mailboxes.

User parts, domain parts and display names given to the validating
constructors must be non-empty and must not contain any of "@<>()" or
whitespace. Quoted strings, comments and folding are not supported.

Header, MessageBuilder and Message use Mailboxes to build and read the
participant headers (From, To, Cc, Reply-To) of a message header block.
*/
package mail
