package db

// SchemaSQL contains the database schema initialization SQL.
// Field names match the JSON shape of internal/models so entities round-trip
// without a mapping layer.
const SchemaSQL = `
    -- ==========================================================================
    -- CHARACTER TABLE (the six fixed cast members)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS character SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON character TYPE string;
    DEFINE FIELD IF NOT EXISTS avatarUrl ON character TYPE string;
    DEFINE FIELD IF NOT EXISTS personality ON character TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS currentPartner ON character TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS emotionalState ON character TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS lastInteractionAt ON character TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS lastConfessionalAt ON character TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS character_name ON character FIELDS name;

    -- ==========================================================================
    -- INTERACTION TABLE (append-only)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS interaction SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS timestamp ON interaction TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS initiator ON interaction TYPE string;
    DEFINE FIELD IF NOT EXISTS recipient ON interaction TYPE string;
    DEFINE FIELD IF NOT EXISTS type ON interaction TYPE string;
    DEFINE FIELD IF NOT EXISTS effects ON interaction TYPE option<object> FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS leakedExcerpt ON interaction TYPE option<string>;

    DEFINE INDEX IF NOT EXISTS interaction_timestamp ON interaction FIELDS timestamp;

    -- ==========================================================================
    -- TIMELINE EVENT TABLE (append-only narrative feed)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS timeline_event SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS timestamp ON timeline_event TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS category ON timeline_event TYPE string;
    DEFINE FIELD IF NOT EXISTS actors ON timeline_event TYPE array<string>;
    DEFINE FIELD IF NOT EXISTS description ON timeline_event TYPE string;

    DEFINE INDEX IF NOT EXISTS timeline_event_timestamp ON timeline_event FIELDS timestamp;

    -- ==========================================================================
    -- CONFESSIONAL TABLE (append-only)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS confessional SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS timestamp ON confessional TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS characterId ON confessional TYPE string;
    DEFINE FIELD IF NOT EXISTS content ON confessional TYPE string;

    DEFINE INDEX IF NOT EXISTS confessional_timestamp ON confessional FIELDS timestamp;

    -- ==========================================================================
    -- CONVERSATION TABLE (append-only two-party exchanges)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS conversation SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS timestamp ON conversation TYPE datetime DEFAULT time::now();
    DEFINE FIELD IF NOT EXISTS participants ON conversation TYPE array<string>;
    DEFINE FIELD IF NOT EXISTS messages ON conversation TYPE array<object> FLEXIBLE;
    REMOVE FIELD IF EXISTS messages.* ON conversation;
    DEFINE FIELD messages.* ON conversation TYPE object FLEXIBLE;
    DEFINE FIELD IF NOT EXISTS context ON conversation TYPE string;
    DEFINE FIELD IF NOT EXISTS emotionalOutcome ON conversation TYPE object FLEXIBLE;

    DEFINE INDEX IF NOT EXISTS conversation_timestamp ON conversation FIELDS timestamp;
    DEFINE INDEX IF NOT EXISTS conversation_participants ON conversation FIELDS participants;

    -- ==========================================================================
    -- CHARACTER MEMORY TABLE (rolling per-pair logs, capped to 10 entries)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS character_memory SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS characterId ON character_memory TYPE string;
    DEFINE FIELD IF NOT EXISTS aboutCharacterId ON character_memory TYPE string;
    DEFINE FIELD IF NOT EXISTS memories ON character_memory TYPE array<string>;
    DEFINE FIELD IF NOT EXISTS lastUpdated ON character_memory TYPE datetime DEFAULT time::now();

    DEFINE INDEX IF NOT EXISTS character_memory_owner ON character_memory FIELDS characterId;
`
